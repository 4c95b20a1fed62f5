package model

// Member represents a shop member
// name은 회원 간에 중복될 수 있다 (unique 제약 없음)
type Member struct {
	// Primary key - auto-increment, never reassigned
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	// Core fields
	Name     string `gorm:"column:name;size:100;not null;index:idx_member_name"`         // 이름
	Email    string `gorm:"column:email;size:255;not null;uniqueIndex:idx_member_email"` // 로그인 이메일 (unique)
	Password string `gorm:"column:password;size:60;not null"`                            // 암호화된 비밀번호

	Address Address `gorm:"embedded"`

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMember creates a new Member instance
// password는 서비스 레이어에서 해싱된 값이어야 한다
func NewMember(name, email, password string, address Address) *Member {
	return &Member{
		Name:     name,
		Email:    email,
		Password: password,
		Address:  address,
	}
}
