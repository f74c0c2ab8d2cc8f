package dto

// CreateCompanyRequest entrada para crear una empresa. El código no se
// recibe: se deriva del nombre (slug sin separadores).
type CreateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateCompanyRequest entrada para actualizar una empresa existente.
type UpdateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyDetailResponse empresa con los nombres de sus sectores asociados.
// Industries siempre es una lista (vacía si no hay asociaciones).
type CompanyDetailResponse struct {
	CompanyResponse
	Industries []string `json:"industries"`
}

// CompanyListResponse listado completo: {companies: [...]}.
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// CompanyBody envoltura {company: {...}} de las respuestas individuales.
type CompanyBody struct {
	Company CompanyResponse `json:"company"`
}

// CompanyDetailBody envoltura {company: {...}} con sectores incluidos.
type CompanyDetailBody struct {
	Company CompanyDetailResponse `json:"company"`
}
