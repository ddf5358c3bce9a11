package models

// BranchMapping pairs a stored branch spelling with its canonical code.
type BranchMapping struct {
	Original  string `json:"original"`
	Canonical string `json:"normalized"`
}

// BranchMappingReport is the diagnostics payload for the branch-mappings
// endpoint: how many distinct raw spellings collapsed into how many codes.
type BranchMappingReport struct {
	TotalOriginalBranches   int             `json:"total_original_branches"`
	TotalNormalizedBranches int             `json:"total_normalized_branches"`
	Mappings                []BranchMapping `json:"mappings"`
}
