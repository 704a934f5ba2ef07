// file: internals/features/academics/faculty/dto/faculty_dto.go
package dto

type ProvisionFacultyRequest struct {
	Email      string `json:"email" validate:"required,email"`
	FullName   string `json:"full_name" validate:"required,max=100"`
	Password   string `json:"password" validate:"required,min=8"`
	EmployeeNo string `json:"employee_no" validate:"required,max=20"`
	Department string `json:"department" validate:"max=100"`
}
