package dto

type ContactRequest struct {
	FirstName   string `form:"first_name" validate:"max=100"`
	LastName    string `form:"last_name" validate:"max=100"`
	Email       string `form:"email" validate:"omitempty,email"`
	InquiryType string `form:"inquiry_type" validate:"omitempty,oneof='Strategic Partnership' 'Model Implementation' 'Media Inquiry'"`
	Message     string `form:"message" validate:"max=5000"`
}
