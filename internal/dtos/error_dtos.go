package dtos

// ValidationErrorDetail is the per-field entry carried in the details of a
// 400 validation response.
type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}
