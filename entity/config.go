package entity

// Config são os dados de exibição e funcionamento da empresa.
type Config struct {
	EmailDono      string `json:"email_dono"`
	NomeFantasia   string `json:"nome_fantasia,omitempty"`
	CorTema        string `json:"cor_tema,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`
	WhatsappNumber string `json:"whatsapp_number,omitempty"`

	// janela diária de funcionamento, ex: "15:00" / "23:59";
	// ausência de qualquer um dos dois significa sempre aberto
	HoraAbre  string `json:"hora_abre,omitempty"`
	HoraFecha string `json:"hora_fecha,omitempty"`
}
