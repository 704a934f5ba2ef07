// file: internals/features/academics/subjects/dto/subject_dto.go
package dto

type CreateSubjectRequest struct {
	Code    string `json:"code" validate:"required,max=20"`
	Name    string `json:"name" validate:"required,max=100"`
	Credits int    `json:"credits" validate:"gte=0,lte=10"`
}
