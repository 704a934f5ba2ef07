// file: internals/features/academics/students/dto/student_dto.go
package dto

type ProvisionStudentRequest struct {
	Email        string `json:"email" validate:"required,email"`
	FullName     string `json:"full_name" validate:"required,max=100"`
	Password     string `json:"password" validate:"required,min=8"`
	StudentNo    string `json:"student_no" validate:"required,max=20"`
	Program      string `json:"program" validate:"max=100"`
	YearEnrolled int    `json:"year_enrolled" validate:"gte=1990,lte=2100"`
}
