package models

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Client est le principal authentifiable : il porte l'email de connexion,
// le hash du mot de passe et le rôle. Ses utilisateurs sont supprimés en
// cascade avec lui.
type Client struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Email       string `gorm:"size:180;not null;uniqueIndex" json:"email"`
	Password    string `gorm:"size:255;not null" json:"-"`
	Role        string `gorm:"size:20;not null;default:user" json:"role,omitempty"`
	Phone       string `gorm:"size:30" json:"phone,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Users       []User `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamps
}

func (c *Client) TableName() string {
	return "client"
}

func (c *Client) IsAdmin() bool {
	return c.Role == RoleAdmin
}
