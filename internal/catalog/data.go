package catalog

// Colleges contains the participating colleges with their KEA codes.
// Source: KEA seat matrix. Fees are annual CET-quota fees in rupees;
// 0 means KEA has not published the fee for the current year.
var Colleges = []College{
	{Code: "E001", Name: "University of Visvesvaraya College of Engineering", Location: "Bangalore", Type: TypeGovernment, Fees: 23460},
	{Code: "E002", Name: "S K S J T Institute of Engineering", Location: "Bangalore", Type: TypeGovernment, Fees: 23460},
	{Code: "E003", Name: "B M S College of Engineering", Location: "Bangalore", Type: TypeAidedPrivate, Fees: 64985},
	{Code: "E004", Name: "Dr. Ambedkar Institute of Technology", Location: "Bangalore", Type: TypeAidedPrivate, Fees: 64985},
	{Code: "E005", Name: "R V College of Engineering", Location: "Bangalore", Type: TypePrivateUnaided, Fees: 87160},
	{Code: "E006", Name: "P E S University", Location: "Bangalore", Type: TypePrivateUnaided, Fees: 87160},
	{Code: "E007", Name: "M S Ramaiah Institute of Technology", Location: "Bangalore", Type: TypePrivateUnaided, Fees: 87160},
	{Code: "E008", Name: "Bangalore Institute of Technology", Location: "Bangalore", Type: TypePrivateUnaided, Fees: 87160},
	{Code: "E009", Name: "Dayananda Sagar College of Engineering", Location: "Bangalore", Type: TypePrivateUnaided, Fees: 87160},
	{Code: "E010", Name: "Sir M Visvesvaraya Institute of Technology", Location: "Bangalore", Type: TypePrivateUnaided, Fees: 87160},
	{Code: "E011", Name: "B N M Institute of Technology", Location: "Bangalore", Type: TypePrivateUnaided, Fees: 87160},
	{Code: "E012", Name: "J S S Academy of Technical Education", Location: "Bangalore", Type: TypePrivateUnaided, Fees: 87160},
	{Code: "E013", Name: "Nitte Meenakshi Institute of Technology", Location: "Bangalore", Type: TypePrivateUnaided, Fees: 87160},
	{Code: "E014", Name: "C M R Institute of Technology", Location: "Bangalore", Type: TypePrivateUnaided, Fees: 87160},
	{Code: "E015", Name: "New Horizon College of Engineering", Location: "Bangalore", Type: TypePrivateUnaided, Fees: 87160},
	{Code: "E016", Name: "R N S Institute of Technology", Location: "Bangalore", Type: TypePrivateUnaided, Fees: 87160},
	{Code: "E017", Name: "Siddaganga Institute of Technology", Location: "Tumkur", Type: TypePrivateUnaided, Fees: 79160},
	{Code: "E018", Name: "National Institute of Engineering", Location: "Mysore", Type: TypeAidedPrivate, Fees: 64985},
	{Code: "E019", Name: "Sri Jayachamarajendra College of Engineering", Location: "Mysore", Type: TypeAidedPrivate, Fees: 64985},
	{Code: "E020", Name: "Vidyavardhaka College of Engineering", Location: "Mysore", Type: TypePrivateUnaided, Fees: 79160},
	{Code: "E021", Name: "Malnad College of Engineering", Location: "Hassan", Type: TypeAidedPrivate, Fees: 64985},
	{Code: "E022", Name: "Bapuji Institute of Engineering and Technology", Location: "Davangere", Type: TypePrivateUnaided, Fees: 79160},
	{Code: "E023", Name: "University B D T College of Engineering", Location: "Davangere", Type: TypeGovernment, Fees: 23460},
	{Code: "E024", Name: "Basaveshwar Engineering College", Location: "Bagalkot", Type: TypeAidedPrivate, Fees: 64985},
	{Code: "E025", Name: "B V B College of Engineering and Technology", Location: "Hubli", Type: TypePrivateUnaided, Fees: 79160},
	{Code: "E026", Name: "S D M College of Engineering and Technology", Location: "Dharwad", Type: TypePrivateUnaided, Fees: 79160},
	{Code: "E027", Name: "Gogte Institute of Technology", Location: "Belgaum", Type: TypePrivateUnaided, Fees: 79160},
	{Code: "E028", Name: "K L S Vishwanathrao Deshpande Institute of Technology", Location: "Haliyal", Type: TypePrivateUnaided, Fees: 79160},
	{Code: "E029", Name: "P D A College of Engineering", Location: "Gulbarga", Type: TypeAidedPrivate, Fees: 64985},
	{Code: "E030", Name: "Ballari Institute of Technology and Management", Location: "Bellary", Type: TypePrivateUnaided, Fees: 79160},
	{Code: "E031", Name: "N M A M Institute of Technology", Location: "Nitte", Type: TypePrivateUnaided, Fees: 79160},
	{Code: "E032", Name: "St. Joseph Engineering College", Location: "Mangalore", Type: TypePrivateUnaided, Fees: 79160},
	{Code: "E033", Name: "Sahyadri College of Engineering and Management", Location: "Mangalore", Type: TypePrivateUnaided, Fees: 79160},
	{Code: "E034", Name: "Canara Engineering College", Location: "Mangalore", Type: TypePrivateUnaided, Fees: 79160},
	{Code: "E035", Name: "Alvas Institute of Engineering and Technology", Location: "Moodbidri", Type: TypePrivateUnaided, Fees: 79160},
	{Code: "E036", Name: "Vivekananda College of Engineering and Technology", Location: "Puttur", Type: TypePrivateUnaided, Fees: 79160},
	{Code: "E037", Name: "Government Engineering College", Location: "Hassan", Type: TypeGovernment, Fees: 23460},
	{Code: "E038", Name: "Government Engineering College", Location: "Ramanagara", Type: TypeGovernment, Fees: 23460},
	{Code: "E039", Name: "Government Engineering College", Location: "Mandya", Type: TypeGovernment, Fees: 23460},
	{Code: "E040", Name: "Government Engineering College", Location: "Raichur", Type: TypeGovernment, Fees: 23460},
	{Code: "E041", Name: "Government Tool Room and Training Centre", Location: "Bangalore", Type: TypeGovernment, Fees: 23460},
	{Code: "E042", Name: "Acharya Institute of Technology", Location: "Bangalore", Type: TypePrivateUnaided, Fees: 87160},
	{Code: "E043", Name: "East West Institute of Technology", Location: "Bangalore", Type: TypePrivateUnaided},
	{Code: "E044", Name: "Global Academy of Technology", Location: "Bangalore", Type: TypePrivateUnaided},
	{Code: "E045", Name: "K S Institute of Technology", Location: "Bangalore", Type: TypePrivateUnaided},
	{Code: "E046", Name: "Atria Institute of Technology", Location: "Bangalore", Type: TypePrivateUnaided},
	{Code: "E047", Name: "Reva University", Location: "Bangalore", Type: TypeSNQ},
	{Code: "E048", Name: "Presidency University", Location: "Bangalore", Type: TypeSNQ},
}

// Branches contains the engineering disciplines with their KEA course codes.
var Branches = []Branch{
	{Code: "AD", Name: "Artificial Intelligence and Data Science"},
	{Code: "AE", Name: "Aeronautical Engineering"},
	{Code: "AI", Name: "Artificial Intelligence and Machine Learning"},
	{Code: "AU", Name: "Automobile Engineering"},
	{Code: "BT", Name: "Biotechnology"},
	{Code: "CB", Name: "Computer Science and Business Systems"},
	{Code: "CE", Name: "Civil Engineering"},
	{Code: "CH", Name: "Chemical Engineering"},
	{Code: "CS", Name: "Computer Science and Engineering"},
	{Code: "CY", Name: "Computer Science (Cyber Security)"},
	{Code: "DS", Name: "Computer Science (Data Science)"},
	{Code: "EC", Name: "Electronics and Communication Engineering"},
	{Code: "EE", Name: "Electrical and Electronics Engineering"},
	{Code: "EI", Name: "Electronics and Instrumentation Engineering"},
	{Code: "ET", Name: "Electronics and Telecommunication Engineering"},
	{Code: "IM", Name: "Industrial Engineering and Management"},
	{Code: "IS", Name: "Information Science and Engineering"},
	{Code: "MD", Name: "Medical Electronics"},
	{Code: "ME", Name: "Mechanical Engineering"},
	{Code: "RO", Name: "Robotics and Automation"},
	{Code: "TX", Name: "Textile Technology"},
}
