package user

// User is a plain record. Identity is the caller-assigned ID; two users
// with the same ID refer to the same account regardless of the other
// fields. All behavior lives in the collaborating services.
type User struct {
	ID       string `gorm:"primaryKey;column:id" json:"id"`
	Name     string `gorm:"not null;column:name" json:"name"`
	Email    string `gorm:"not null;column:email" json:"email"`
	IsActive bool   `gorm:"not null;default:true;column:is_active" json:"is_active"`
}

func (User) TableName() string { return "user" }

// New builds a user in the default active state. It does not validate;
// validation is a separate capability.
func New(id, name, email string) *User {
	return &User{
		ID:       id,
		Name:     name,
		Email:    email,
		IsActive: true,
	}
}
