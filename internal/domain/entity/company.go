package entity

// Company representa una empresa. El código es un slug derivado del nombre
// en el momento de la creación y nunca cambia después.
type Company struct {
	Code        string
	Name        string
	Description string
}
