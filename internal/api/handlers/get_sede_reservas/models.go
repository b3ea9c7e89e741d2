package get_sede_reservas

import (
	"net/url"
	"time"

	"github.com/ucc-comedor/ComedorService/internal/domain"
	"github.com/ucc-comedor/ComedorService/internal/service/reservas/models"
)

// ParseQuery собирает запрос сервиса из query-параметров:
// fecha, turno, estado, incluir_bajas
func ParseQuery(sedeID int64, query url.Values) (*models.GetSedeReservasRequest, error) {
	req := &models.GetSedeReservasRequest{SedeID: sedeID}

	if fechaStr := query.Get("fecha"); fechaStr != "" {
		fecha, err := time.Parse(domain.DateFormat, fechaStr)
		if err != nil {
			return nil, err
		}
		req.Fecha = &fecha
	}

	if turno := query.Get("turno"); turno != "" {
		req.Turno = &turno
	}

	if estado := query.Get("estado"); estado != "" {
		req.Estado = &estado
	}

	req.IncluirBajas = query.Get("incluir_bajas") == "true"

	return req, nil
}
