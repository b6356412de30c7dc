package log

type Action = string

const (
	TotalBooks     Action = "TotalBooks"
	AddBook               = "AddBook"
	ViewBooks             = "ViewBooks"
	SearchBooks           = "SearchBooks"
	DeleteBook            = "DeleteBook"
	SeedBooks             = "SeedBooks"
	RegisterMember        = "RegisterStudent"
	ListMembers           = "ListStudents"
	DeleteMember          = "DeleteStudent"
	SeedMembers           = "SeedStudents"
	BorrowBook            = "BorrowBook"
	ReturnBook            = "ReturnBook"
	SaveDocument          = "SaveDocument"
	LoadDocument          = "LoadDocument"
)
