package entity

// Industry representa un sector económico. Se relaciona N—M con Company a
// través de la tabla company_industry; la asociación no tiene entidad propia.
type Industry struct {
	Code     string
	Industry string // nombre legible del sector
}
