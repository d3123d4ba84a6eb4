package repository

import (
	"gorm.io/gorm"
)

// Repositories 聚合四个实体的存储，并提供工作单元（事务）边界。
type Repositories struct {
	User    UserStore
	Person  PersonStore
	Address AddressStore
	Picture PictureStore
	db      *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}

func NewPersonRepository(db *gorm.DB) PersonStore {
	return &PersonRepository{db: db}
}

func NewAddressRepository(db *gorm.DB) AddressStore {
	return &AddressRepository{db: db}
}

func NewPictureRepository(db *gorm.DB) PictureStore {
	return &PictureRepository{db: db}
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Person:  NewPersonRepository(db),
		Address: NewAddressRepository(db),
		Picture: NewPictureRepository(db),
		db:      db,
	}
}

// Transaction 在单个数据库事务中执行 fn，fn 内部必须使用传入的 tx 仓储。
// fn 返回错误或 panic 时整体回滚。
func (r *Repositories) Transaction(fn func(tx *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
