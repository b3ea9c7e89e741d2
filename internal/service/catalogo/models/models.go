package models

import (
	"time"

	"github.com/ucc-comedor/ComedorService/internal/domain"
)

// Response модели

// SedeResponse ответ с данными sede
type SedeResponse struct {
	ID        int64   `json:"id"`
	Nombre    string  `json:"nombre"`
	Direccion string  `json:"direccion"`
	Capacidad int     `json:"capacidad"`
	Imagen    *string `json:"imagen,omitempty"`
}

// SedeListResponse ответ со списком sedes
type SedeListResponse struct {
	Sedes []SedeResponse `json:"sedes"`
}

// ConsumibleResponse ответ с данными consumible
type ConsumibleResponse struct {
	ID          int64   `json:"id"`
	Nombre      string  `json:"nombre"`
	Tipo        string  `json:"tipo"`
	Descripcion string  `json:"descripcion"`
	Precio      float64 `json:"precio"`
	Disponible  bool    `json:"disponible"`
	Imagen      *string `json:"imagen,omitempty"`
}

// ConsumibleListResponse ответ со списком consumibles
type ConsumibleListResponse struct {
	Consumibles []ConsumibleResponse `json:"consumibles"`
}

// MenuDiaResponse меню sede на дату и turno, разложенное по категориям
type MenuDiaResponse struct {
	SedeID  int64                `json:"sedeId"`
	Fecha   string               `json:"fecha"` // "2026-09-10"
	Turno   string               `json:"turno"`
	Platos  []ConsumibleResponse `json:"platos"`
	Bebidas []ConsumibleResponse `json:"bebidas"`
	Postres []ConsumibleResponse `json:"postres"`
}

// Методы конвертации

// FromDomainSede конвертирует domain модель в DTO
func FromDomainSede(s *domain.Sede) *SedeResponse {
	if s == nil {
		return nil
	}
	return &SedeResponse{
		ID:        s.ID,
		Nombre:    s.Nombre,
		Direccion: s.Direccion,
		Capacidad: s.Capacidad,
		Imagen:    s.Imagen,
	}
}

// FromDomainSedeList конвертирует список domain моделей в DTO
func FromDomainSedeList(sedes []*domain.Sede) *SedeListResponse {
	resp := &SedeListResponse{Sedes: make([]SedeResponse, 0, len(sedes))}
	for _, s := range sedes {
		if sedeResp := FromDomainSede(s); sedeResp != nil {
			resp.Sedes = append(resp.Sedes, *sedeResp)
		}
	}
	return resp
}

// FromDomainConsumible конвертирует domain модель в DTO
func FromDomainConsumible(c *domain.Consumible) *ConsumibleResponse {
	if c == nil {
		return nil
	}
	return &ConsumibleResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Tipo:        string(c.Tipo),
		Descripcion: c.Descripcion,
		Precio:      c.Precio,
		Disponible:  c.Disponible,
		Imagen:      c.Imagen,
	}
}

// FromDomainConsumibleList конвертирует список domain моделей в DTO
func FromDomainConsumibleList(consumibles []*domain.Consumible) *ConsumibleListResponse {
	resp := &ConsumibleListResponse{Consumibles: make([]ConsumibleResponse, 0, len(consumibles))}
	for _, c := range consumibles {
		if cResp := FromDomainConsumible(c); cResp != nil {
			resp.Consumibles = append(resp.Consumibles, *cResp)
		}
	}
	return resp
}

// FromDomainMenuDia конвертирует domain модель в DTO
func FromDomainMenuDia(m *domain.MenuDia) *MenuDiaResponse {
	if m == nil {
		return nil
	}
	return &MenuDiaResponse{
		SedeID:  m.SedeID,
		Fecha:   m.Fecha.Format(domain.DateFormat),
		Turno:   string(m.Turno),
		Platos:  fromConsumibles(m.Platos),
		Bebidas: fromConsumibles(m.Bebidas),
		Postres: fromConsumibles(m.Postres),
	}
}

func fromConsumibles(items []domain.Consumible) []ConsumibleResponse {
	resp := make([]ConsumibleResponse, 0, len(items))
	for i := range items {
		resp = append(resp, *FromDomainConsumible(&items[i]))
	}
	return resp
}

// ParseFecha парсит дату в формате "2026-09-10"
func ParseFecha(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}
