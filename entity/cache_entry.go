package entity

// CacheEntry é uma linha do armazenamento local chave/valor usado pelo
// cache da empresa. O valor é o envelope {timestamp, data} serializado.
type CacheEntry struct {
	Chave string `gorm:"primaryKey" json:"chave"`
	Valor string `json:"valor"`
}
