package staffservice

// Employee сотрудник из справочника портала
type Employee struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
}
