package consts

// PersonField 标识 Person 上可单独更新的字段，同时也是数据库列名。
type PersonField string

const (
	PersonFieldFirstName    PersonField = "first_name"
	PersonFieldLastName     PersonField = "last_name"
	PersonFieldPersonalCode PersonField = "personal_code"
	PersonFieldPhoneNumber  PersonField = "phone_number"
	PersonFieldEmail        PersonField = "email"
)

// IsUnique 返回该字段是否要求在所有 Person 之间唯一。
func (f PersonField) IsUnique() bool {
	switch f {
	case PersonFieldPersonalCode, PersonFieldPhoneNumber, PersonFieldEmail:
		return true
	default:
		return false
	}
}

// Valid 返回该字段是否为可更新字段。
func (f PersonField) Valid() bool {
	switch f {
	case PersonFieldFirstName, PersonFieldLastName,
		PersonFieldPersonalCode, PersonFieldPhoneNumber, PersonFieldEmail:
		return true
	default:
		return false
	}
}
