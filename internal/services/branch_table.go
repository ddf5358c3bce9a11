package services

// branchVariants maps each canonical branch code to the name variations the
// cutoff reports print for it. The lists carry the exact spellings seen in
// published reports, inconsistent spacing included.
var branchVariants = map[string][]string{
	"CSE": {
		"Computer Science and Engineering",
		"Computer Science & Engineering",
		"Computer Engineering",
		"Computer Science",
		"Computer Science and Engineering (Artificial Intelligence)",
		"Computer Science and Engineering (Artificial Intelligence and Data Science)",
		"Computer Science and Engineering(Artificial Intelligence and Machine Learning)",
		"Computer Science and Engineering (Cyber Security)",
		"Computer Science and Engineering(Cyber Security)",
		"Computer Science and Engineering(Data Science)",
		"Computer Science and Engineering (Internet of Things and Cyber Security Including Block Chain",
		"Computer Engineering (Software Engineering)",
		"Computer Science and Business Systems",
		"Computer Science and Design",
	},
	"IT": {
		"Information Technology",
		"Information Technology Engineering",
		"Information Technology and Engineering",
	},
	"ECE": {
		"Electronics and Communication Engineering",
		"Electronics & Communication Engineering",
		"Electronics and Communications Engineering",
		"Electronics and Telecommunication Engineering",
		"Electronics & Telecommunication Engineering",
		"Electronics Engineering",
	},
	"EEE": {
		"Electrical and Electronics Engineering",
		"Electrical & Electronics Engineering",
		"Electrical Engineering",
	},
	"ETC": {
		"Electronics and Telecommunication",
		"Electronics & Telecommunication",
	},
	"ME": {
		"Mechanical Engineering",
		"Mechanical and Automation Engineering",
		"Mechanical & Automation Engineering",
	},
	"CE": {
		"Civil Engineering",
		"Civil and Environmental Engineering",
		"Civil & Environmental Engineering",
		"Civil and infrastructure Engineering",
		"Civil Engineering and Planning",
	},
	"CHE": {
		"Chemical Engineering",
		"Chemical Technology",
	},
	"BT": {
		"Bio Technology",
		"Biotechnology",
		"Bio-Technology",
	},
	"BME": {
		"Bio Medical Engineering",
		"Biomedical Engineering",
		"Bio-Medical Engineering",
	},
	"AE": {
		"Automobile Engineering",
		"Automotive Engineering",
	},
	"AERO": {
		"Aeronautical Engineering",
		"Aerospace Engineering",
	},
	"AGE": {
		"Agricultural Engineering",
		"Agriculture Engineering",
	},
	"AIDS": {
		"Artificial Intelligence and Data Science",
		"Artificial Intelligence & Data Science",
		"AI and Data Science",
	},
	"AIML": {
		"Artificial Intelligence and Machine Learning",
		"Artificial Intelligence & Machine Learning",
		"AI and Machine Learning",
	},
	"DS": {
		"Data Science",
		"Data Science and Engineering",
	},
	"AI": {
		"Artificial Intelligence",
	},
	"AR": {
		"Automation and Robotics",
		"Automation & Robotics",
		"Robotics and Automation",
	},
	"ARCH": {
		"Architecture",
		"Architectural Assistantship",
	},
	"5G": {
		"5G",
		"5G Technology",
	},
}

// searchExpansions maps the shorthand students type into a search box onto
// the full names to also match against the branch column.
var searchExpansions = map[string][]string{
	"CS":              {"Computer Science", "Computer Science and Engineering"},
	"IT":              {"Information Technology"},
	"ECE":             {"Electronics and Communication", "Electronics and Telecommunication"},
	"ENTC":            {"Electronics and Telecommunication", "Electronics and Communication"},
	"MECH":            {"Mechanical Engineering", "Mechanical"},
	"CIVIL":           {"Civil Engineering", "Civil"},
	"EEE":             {"Electrical Engineering", "Electrical and Electronics"},
	"ELECTRICAL":      {"Electrical Engineering", "Electrical and Electronics"},
	"CHEMICAL":        {"Chemical Engineering", "Chemical"},
	"BIOTECH":         {"Biotechnology", "Biomedical Engineering"},
	"AUTOMOBILE":      {"Automobile Engineering", "Automotive"},
	"PRODUCTION":      {"Production Engineering", "Manufacturing"},
	"INSTRUMENTATION": {"Instrumentation Engineering", "Instrumentation"},
}
