package infrastructure

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/account"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

type AccountRepository struct {
	DB *gorm.DB
}

type accountDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	OwnerId   string    `gorm:"column:owner_id;type:uuid;index;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Type      string    `gorm:"type:varchar(30);not null"`
	Balance   float64   `gorm:"type:decimal(15,2);not null;default:0"`
	IsCredit  bool      `gorm:"column:is_credit;not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (accountDB) TableName() string {
	return "accounts"
}

func toDomainAccount(adb *accountDB) (*account.Account, error) {
	id, err := pkg.ParseULID(adb.Id)
	if err != nil {
		return nil, err
	}

	ownerID, err := uuid.Parse(adb.OwnerId)
	if err != nil {
		return nil, err
	}

	return &account.Account{
		Id:        id,
		OwnerId:   ownerID,
		Name:      adb.Name,
		Type:      account.AccountType(adb.Type),
		Balance:   adb.Balance,
		IsCredit:  adb.IsCredit,
		CreatedAt: adb.CreatedAt,
		UpdatedAt: adb.UpdatedAt,
	}, nil
}

func toDBAccount(a *account.Account) *accountDB {
	return &accountDB{
		Id:        a.Id.String(),
		OwnerId:   a.OwnerId.String(),
		Name:      a.Name,
		Type:      string(a.Type),
		Balance:   a.Balance,
		IsCredit:  a.IsCredit,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	adb := toDBAccount(a)
	return r.DB.WithContext(ctx).Table("accounts").Create(adb).Error
}

func (r *AccountRepository) Update(ctx context.Context, a *account.Account) error {
	adb := toDBAccount(a)
	return r.DB.WithContext(ctx).Model(&accountDB{}).
		Where("id = ? AND owner_id = ?", adb.Id, adb.OwnerId).
		Select("Name", "Type", "IsCredit", "UpdatedAt").
		Updates(adb).Error
}

func (r *AccountRepository) Delete(ctx context.Context, accountID ulid.ULID, ownerID uuid.UUID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", accountID.String(), ownerID.String()).
		Delete(&accountDB{}).Error
}

func (r *AccountRepository) GetById(ctx context.Context, accountID ulid.ULID, ownerID uuid.UUID) (*account.Account, error) {
	var adb accountDB
	err := r.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", accountID.String(), ownerID.String()).
		First(&adb).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return toDomainAccount(&adb)
}

func (r *AccountRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID, pagination *pkg.PaginationParams) ([]*account.Account, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("accounts").Where("owner_id = ?", ownerID.String())
	return pkg.Paginate(baseQuery, pagination, "created_at ASC", toDomainAccount)
}

func (r *AccountRepository) GetTotalBalance(ctx context.Context, ownerID uuid.UUID) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).Model(&accountDB{}).
		Where("owner_id = ?", ownerID.String()).
		Select("COALESCE(SUM(balance), 0)").Scan(&total).Error
	return total, err
}

func (r *AccountRepository) UpdateBalance(ctx context.Context, accountID ulid.ULID, delta float64) error {
	return r.DB.WithContext(ctx).Model(&accountDB{}).Where("id = ?", accountID.String()).
		UpdateColumn("balance", gorm.Expr("balance + ?", delta)).
		UpdateColumn("updated_at", time.Now()).Error
}

func (r *AccountRepository) UpdateBalanceWithTx(ctx context.Context, tx interface{}, accountID ulid.ULID, delta float64) error {
	dbTx := tx.(*gorm.DB)
	return dbTx.WithContext(ctx).Model(&accountDB{}).Where("id = ?", accountID.String()).
		UpdateColumn("balance", gorm.Expr("balance + ?", delta)).
		UpdateColumn("updated_at", time.Now()).Error
}

func (r *AccountRepository) BeginTx(ctx context.Context) (interface{}, error) {
	return r.DB.WithContext(ctx).Begin(), nil
}

func (r *AccountRepository) CommitTx(tx interface{}) error {
	return tx.(*gorm.DB).Commit().Error
}

func (r *AccountRepository) RollbackTx(tx interface{}) error {
	return tx.(*gorm.DB).Rollback().Error
}
