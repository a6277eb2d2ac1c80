package refdata

// Built-in catalogs used when the reference-data service is unreachable.
// Province IDs follow the GSO administrative numbering; 99 is the
// catch-all bucket for unrecognized regions.

var defaultProvinces = []Province{
	{ID: 1, Name: "Hà Nội"},
	{ID: 2, Name: "Hà Giang"},
	{ID: 4, Name: "Cao Bằng"},
	{ID: 6, Name: "Bắc Kạn"},
	{ID: 8, Name: "Tuyên Quang"},
	{ID: 10, Name: "Lào Cai"},
	{ID: 11, Name: "Điện Biên"},
	{ID: 12, Name: "Lai Châu"},
	{ID: 14, Name: "Sơn La"},
	{ID: 15, Name: "Yên Bái"},
	{ID: 17, Name: "Hòa Bình"},
	{ID: 19, Name: "Thái Nguyên"},
	{ID: 20, Name: "Lạng Sơn"},
	{ID: 22, Name: "Quảng Ninh"},
	{ID: 24, Name: "Bắc Giang"},
	{ID: 25, Name: "Phú Thọ"},
	{ID: 26, Name: "Vĩnh Phúc"},
	{ID: 27, Name: "Bắc Ninh"},
	{ID: 30, Name: "Hải Dương"},
	{ID: 31, Name: "Hải Phòng"},
	{ID: 33, Name: "Hưng Yên"},
	{ID: 34, Name: "Thái Bình"},
	{ID: 35, Name: "Hà Nam"},
	{ID: 36, Name: "Nam Định"},
	{ID: 37, Name: "Ninh Bình"},
	{ID: 38, Name: "Thanh Hóa"},
	{ID: 40, Name: "Nghệ An"},
	{ID: 42, Name: "Hà Tĩnh"},
	{ID: 44, Name: "Quảng Bình"},
	{ID: 45, Name: "Quảng Trị"},
	{ID: 46, Name: "Thừa Thiên Huế"},
	{ID: 48, Name: "Đà Nẵng"},
	{ID: 49, Name: "Quảng Nam"},
	{ID: 51, Name: "Quảng Ngãi"},
	{ID: 52, Name: "Bình Định"},
	{ID: 54, Name: "Phú Yên"},
	{ID: 56, Name: "Khánh Hòa"},
	{ID: 58, Name: "Ninh Thuận"},
	{ID: 60, Name: "Bình Thuận"},
	{ID: 62, Name: "Kon Tum"},
	{ID: 64, Name: "Gia Lai"},
	{ID: 66, Name: "Đắk Lắk"},
	{ID: 67, Name: "Đắk Nông"},
	{ID: 68, Name: "Lâm Đồng"},
	{ID: 70, Name: "Bình Phước"},
	{ID: 72, Name: "Tây Ninh"},
	{ID: 74, Name: "Bình Dương"},
	{ID: 75, Name: "Đồng Nai"},
	{ID: 77, Name: "Bà Rịa - Vũng Tàu"},
	{ID: 79, Name: "Hồ Chí Minh"},
	{ID: 80, Name: "Long An"},
	{ID: 82, Name: "Tiền Giang"},
	{ID: 83, Name: "Bến Tre"},
	{ID: 84, Name: "Trà Vinh"},
	{ID: 86, Name: "Vĩnh Long"},
	{ID: 87, Name: "Đồng Tháp"},
	{ID: 89, Name: "An Giang"},
	{ID: 91, Name: "Kiên Giang"},
	{ID: 92, Name: "Cần Thơ"},
	{ID: 93, Name: "Hậu Giang"},
	{ID: 94, Name: "Sóc Trăng"},
	{ID: 95, Name: "Bạc Liêu"},
	{ID: 96, Name: "Cà Mau"},
	{ID: 99, Name: "Khác"},
}

var defaultSkills = []Skill{
	{ID: 1, Name: "Java"},
	{ID: 2, Name: "Python"},
	{ID: 3, Name: "JavaScript"},
	{ID: 4, Name: "TypeScript"},
	{ID: 5, Name: "Go"},
	{ID: 6, Name: "C"},
	{ID: 7, Name: "C++"},
	{ID: 8, Name: "C#"},
	{ID: 9, Name: "PHP"},
	{ID: 10, Name: "Ruby"},
	{ID: 11, Name: "Swift"},
	{ID: 12, Name: "Kotlin"},
	{ID: 13, Name: "Rust"},
	{ID: 14, Name: "Scala"},
	{ID: 15, Name: "SQL"},
	{ID: 16, Name: "HTML"},
	{ID: 17, Name: "CSS"},
	{ID: 18, Name: "React"},
	{ID: 19, Name: "Angular"},
	{ID: 20, Name: "Vue"},
	{ID: 21, Name: "Node.js"},
	{ID: 22, Name: "Spring"},
	{ID: 23, Name: "Django"},
	{ID: 24, Name: "Flask"},
	{ID: 25, Name: "Laravel"},
	{ID: 26, Name: ".NET"},
	{ID: 27, Name: "MySQL"},
	{ID: 28, Name: "PostgreSQL"},
	{ID: 29, Name: "MongoDB"},
	{ID: 30, Name: "Redis"},
	{ID: 31, Name: "Oracle"},
	{ID: 32, Name: "SQL Server"},
	{ID: 33, Name: "Docker"},
	{ID: 34, Name: "Kubernetes"},
	{ID: 35, Name: "AWS"},
	{ID: 36, Name: "Azure"},
	{ID: 37, Name: "Git"},
	{ID: 38, Name: "Linux"},
	{ID: 39, Name: "Jenkins"},
	{ID: 40, Name: "Terraform"},
	{ID: 41, Name: "Ansible"},
	{ID: 42, Name: "GraphQL"},
	{ID: 43, Name: "REST API"},
	{ID: 44, Name: "Microservices"},
	{ID: 45, Name: "Machine Learning"},
	{ID: 46, Name: "Deep Learning"},
	{ID: 47, Name: "Data Analysis"},
	{ID: 48, Name: "TensorFlow"},
	{ID: 49, Name: "PyTorch"},
	{ID: 50, Name: "Excel"},
	{ID: 51, Name: "Photoshop"},
	{ID: 52, Name: "Illustrator"},
	{ID: 53, Name: "Figma"},
	{ID: 54, Name: "AutoCAD"},
	{ID: 55, Name: "Project Management"},
	{ID: 56, Name: "Agile"},
	{ID: 57, Name: "Scrum"},
	{ID: 58, Name: "Teamwork"},
	{ID: 59, Name: "Communication"},
	{ID: 60, Name: "Leadership"},
	{ID: 61, Name: "Problem Solving"},
	{ID: 62, Name: "Time Management"},
	{ID: 63, Name: "Negotiation"},
	{ID: 64, Name: "Sales"},
	{ID: 65, Name: "Marketing"},
	{ID: 66, Name: "SEO"},
	{ID: 67, Name: "Content Writing"},
	{ID: 68, Name: "Accounting"},
	{ID: 69, Name: "Customer Service"},
	{ID: 70, Name: "Recruitment"},
}
