package postgres

// AplicativoModel é o model GORM para aplicativos
type AplicativoModel struct {
	ID            string  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Nombre        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Descripcion   *string `gorm:"type:text"`
	Observaciones *string `gorm:"type:text"`
	VersionActual *string `gorm:"type:varchar(100)"`
	CreatedAt     int64   `gorm:"autoCreateTime;index"`
	UpdatedAt     int64   `gorm:"autoUpdateTime"`

	Instaladores []InstaladorModel `gorm:"foreignKey:AplicativoID;constraint:OnDelete:CASCADE"`
}

func (AplicativoModel) TableName() string {
	return "aplicativos"
}

// InstaladorModel é o model GORM para instaladores
type InstaladorModel struct {
	ID            string  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Version       string  `gorm:"type:varchar(100);not null"`
	ArchivoURL    string  `gorm:"type:varchar(500);not null"`
	NombreArchivo string  `gorm:"type:varchar(500)"`
	Estado        *string `gorm:"type:varchar(100)"`
	Observaciones *string `gorm:"type:text"`
	FechaCarga    int64   `gorm:"not null"`
	AplicativoID  string  `gorm:"type:uuid;not null;index"`
	UsuarioID     *string `gorm:"type:uuid;index"`
	CreatedAt     int64   `gorm:"autoCreateTime;index"`
	UpdatedAt     int64   `gorm:"autoUpdateTime"`

	Aplicativo *AplicativoModel `gorm:"foreignKey:AplicativoID"`
	Usuario    *UsuarioModel    `gorm:"foreignKey:UsuarioID;constraint:OnDelete:SET NULL"`
}

func (InstaladorModel) TableName() string {
	return "instaladores"
}

// UsuarioModel é o model GORM para usuários
type UsuarioModel struct {
	ID           string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Nombre       string `gorm:"type:varchar(500);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Rol          string `gorm:"type:varchar(50);not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime"`
	UpdatedAt    int64  `gorm:"autoUpdateTime"`
}

func (UsuarioModel) TableName() string {
	return "usuarios"
}
