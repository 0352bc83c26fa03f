package form

var Departments = []string{
	"Engineering",
	"Sales",
	"Marketing",
	"HR",
	"Finance",
	"Operations",
	"Support",
}

var Positions = []string{
	"Junior Developer",
	"Senior Developer",
	"Team Lead",
	"Manager",
	"Director",
	"Analyst",
	"Specialist",
}
