package dto

// CreateIndustryRequest entrada para crear un sector: {code, industry}.
type CreateIndustryRequest struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// AssociateIndustryRequest entrada para asociar una empresa a un sector.
type AssociateIndustryRequest struct {
	CompCode string `json:"comp_code"`
}

// IndustryResponse salida de un sector.
type IndustryResponse struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// IndustryDetailResponse sector con los nombres de sus empresas asociadas.
// Companies siempre es una lista (vacía si no hay asociaciones).
type IndustryDetailResponse struct {
	IndustryResponse
	Companies []string `json:"companies"`
}

// IndustryListResponse listado completo: {industries: [...]}.
type IndustryListResponse struct {
	Industries []IndustryResponse `json:"industries"`
}

// IndustryBody envoltura {industry: {...}} de las respuestas individuales.
type IndustryBody struct {
	Industry IndustryResponse `json:"industry"`
}

// IndustryDetailBody envoltura {industry: {...}} con empresas incluidas.
type IndustryDetailBody struct {
	Industry IndustryDetailResponse `json:"industry"`
}
