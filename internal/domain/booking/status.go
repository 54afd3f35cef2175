package booking

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Transições são permissivas: qualquer status pode suceder qualquer
// outro por ação do admin. Só a pertinência ao conjunto é validada.
func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusPending
}
