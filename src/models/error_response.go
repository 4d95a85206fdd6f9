package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int    `json:"status"`          // HTTP Status Code
	Message string `json:"message"`         // รายละเอียดของ Error
	Field   string `json:"field,omitempty"` // ฟิลด์แรกที่ไม่ผ่าน validation
}
