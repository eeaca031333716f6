package models

type Class struct {
	ID          string
	SubjectName string
	Semester    string
	TeacherID   string
}

type Student struct {
	ID         string
	ClassID    string
	Name       string
	RollNumber string
}
