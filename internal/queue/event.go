package queue

// AusenciaEvent событие неявки от backoffice: оператор отметил,
// что владелец резервации не пришел к своему слоту
type AusenciaEvent struct {
	ReservaID   int64  `json:"reservaId"`
	DetectadaAt string `json:"detectadaAt"`
	Motivo      string `json:"motivo,omitempty"`
}
