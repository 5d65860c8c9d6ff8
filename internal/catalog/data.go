package catalog

var defaultVocabulary = []string{
	// Programming languages
	"Python", "Java", "C++", "C#", "JavaScript", "TypeScript", "Ruby", "PHP", "Swift", "Kotlin", "Go", "Rust", "R", "Scala", "Dart",

	// Data science & AI
	"Machine Learning", "Deep Learning", "Data Science", "Statistics", "Pandas", "NumPy", "Scikit-learn", "Keras",
	"TensorFlow", "PyTorch", "NLP", "Computer Vision", "OpenCV", "Reinforcement Learning", "Generative AI", "LLM",
	"Matplotlib", "Seaborn", "Plotly", "Tableau", "Power BI", "Excel", "Data Visualization",

	// Web development
	"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js", "Express", "Django", "Flask", "FastAPI", "Spring Boot",
	"ASP.NET", "Ruby on Rails", "Laravel", "Tailwind CSS", "Bootstrap", "SASS", "GraphQL", "REST APIs",

	// Databases
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "NoSQL", "Redis", "Cassandra", "Oracle", "SQLite", "Firebase",

	// DevOps & cloud
	"Git", "GitHub", "GitLab", "Docker", "Kubernetes", "Jenkins", "Travis CI", "CircleCI", "Ansible", "Terraform",
	"AWS", "Azure", "Google Cloud", "Linux", "Unix", "Bash", "Shell Scripting", "Nginx", "Apache",

	// Mobile
	"Android", "iOS", "Flutter", "React Native", "SwiftUI", "Jetpack Compose",

	// Security
	"Network Security", "Penetration Testing", "Ethical Hacking", "Cryptography", "Firewalls", "Wireshark", "Metasploit", "SIEM",

	// Other
	"Agile", "Scrum", "JIRA", "Trello", "Slack", "Communication", "Leadership", "Problem Solving", "Critical Thinking",
}

// Role order is kept stable for listings.
var defaultRoles = []Role{
	{Name: "Data Scientist", Skills: []string{"Python", "Machine Learning", "Statistics", "Data Visualization", "Pandas", "NumPy", "SQL", "Scikit-learn", "TensorFlow"}},
	{Name: "AI Engineer", Skills: []string{"Python", "Deep Learning", "TensorFlow", "PyTorch", "NLP", "Computer Vision", "MLOps", "Docker", "Kubernetes"}},
	{Name: "Data Analyst", Skills: []string{"SQL", "Python", "Excel", "Tableau", "Power BI", "Data Visualization", "Statistics", "Pandas"}},
	{Name: "Machine Learning Engineer", Skills: []string{"Python", "Machine Learning", "Deep Learning", "Scikit-learn", "TensorFlow", "PyTorch", "SQL", "Spark", "Hadoop"}},
	{Name: "Web Developer", Skills: []string{"HTML", "CSS", "JavaScript", "React", "Node.js", "Git", "REST APIs", "SQL"}},
	{Name: "Full Stack Developer", Skills: []string{"HTML", "CSS", "JavaScript", "React", "Node.js", "Express", "MongoDB", "SQL", "Git", "Docker"}},
	{Name: "Frontend Developer", Skills: []string{"HTML", "CSS", "JavaScript", "React", "Vue.js", "Angular", "Tailwind CSS", "Git"}},
	{Name: "Backend Developer", Skills: []string{"Python", "Java", "Node.js", "Django", "Flask", "SQL", "NoSQL", "REST APIs", "Docker"}},
	{Name: "DevOps Engineer", Skills: []string{"Linux", "Python", "Bash", "Docker", "Kubernetes", "AWS", "Azure", "CI/CD", "Terraform", "Jenkins"}},
	{Name: "Mobile App Developer", Skills: []string{"Java", "Kotlin", "Swift", "Flutter", "React Native", "Firebase", "Git"}},
	{Name: "Cloud Architect", Skills: []string{"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Terraform", "Linux", "Networking", "Security"}},
	{Name: "Cybersecurity Analyst", Skills: []string{"Network Security", "Linux", "Python", "Penetration Testing", "Ethical Hacking", "Firewalls", "SIEM", "Cryptography"}},
	{Name: "Product Manager", Skills: []string{"Product Strategy", "Agile", "Scrum", "User Research", "Data Analysis", "Communication", "Roadmapping", "JIRA"}},
}

// Keys are lower-cased skill labels.
var defaultAdvice = map[string]string{
	"python":           "Build a web scraper or data analysis tool. Course: generic Python bootcamp.",
	"sql":              "Practice complex queries on LeetCode/HackerRank.",
	"machine learning": "Course: Andrew Ng's ML Specialization on Coursera.",
	"deep learning":    "Project: Build a digit recognizer using MNIST.",
	"nlp":              "Project: Create a sentiment analysis bot for Twitter/Reddit.",
	"computer vision":  "Project: Build a face mask detector using OpenCV.",
	"tensorflow":       "Practice: Reimplement a paper from scratch.",
	"pytorch":          "Course: Fast.ai Practical Deep Learning.",
	"docker":           "Project: Containerize a simple Flask app.",
	"kubernetes":       "Lab: Deploy a microservice cluster specifically for ML models.",
	"aws":              "Cert: AWS Certified Machine Learning Specialty.",
	"azure":            "Cert: Azure AI Engineer Associate.",
}

var defaultSalaries = map[string]SalaryBands{
	"Data Scientist":            {Junior: "$95,000 - $125,000", Mid: "$130,000 - $165,000", Senior: "$170,000 - $210,000", Lead: "$220,000+"},
	"Software Engineer":         {Junior: "$90,000 - $120,000", Mid: "$135,000 - $170,000", Senior: "$175,000 - $220,000", Lead: "$230,000+"},
	"Machine Learning Engineer": {Junior: "$100,000 - $135,000", Mid: "$145,000 - $185,000", Senior: "$190,000 - $240,000", Lead: "$250,000+"},
	"AI Research Scientist":     {Junior: "$130,000 - $160,000", Mid: "$170,000 - $220,000", Senior: "$230,000 - $300,000", Lead: "$320,000+"},
	"Data Analyst":              {Junior: "$70,000 - $90,000", Mid: "$95,000 - $120,000", Senior: "$125,000 - $150,000", Lead: "$160,000+"},
	"Product Manager":           {Junior: "$85,000 - $115,000", Mid: "$125,000 - $160,000", Senior: "$170,000 - $210,000", Lead: "$220,000+"},
	"DevOps Engineer":           {Junior: "$95,000 - $120,000", Mid: "$130,000 - $160,000", Senior: "$170,000 - $200,000", Lead: "$210,000+"},
	"Full Stack Developer":      {Junior: "$85,000 - $115,000", Mid: "$125,000 - $155,000", Senior: "$165,000 - $200,000", Lead: "$210,000+"},
	"Mobile App Developer":      {Junior: "$80,000 - $110,000", Mid: "$120,000 - $150,000", Senior: "$160,000 - $190,000", Lead: "$200,000+"},
	"Cybersecurity Analyst":     {Junior: "$85,000 - $110,000", Mid: "$115,000 - $145,000", Senior: "$150,000 - $180,000", Lead: "$190,000+"},
	"Cloud Architect":           {Junior: "$100,000 - $130,000", Mid: "$140,000 - $175,000", Senior: "$180,000 - $230,000", Lead: "$240,000+"},
}
