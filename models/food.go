package models

// Food is an entry of the read-only nutrition catalog. It is pulled once
// into the local store and never pushed.
type Food struct {
	Code          int64   `json:"codigo_argenfood"`
	Name          string  `json:"nombre"`
	CategoryID    int64   `json:"categoria"`
	EnergyKcal    float64 `json:"energia_kcal"`
	ProteinsG     float64 `json:"proteinas_g"`
	FatsG         float64 `json:"grasas_totales_g"`
	CarbohydrateG float64 `json:"carbohidratos_disponibles_g"`
}
