package infrastructure

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/transaction"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

type TransactionRepository struct {
	DB *gorm.DB
}

type transactionDB struct {
	Id         string    `gorm:"type:varchar(26);primaryKey"`
	OwnerId    string    `gorm:"column:owner_id;type:uuid;index;not null"`
	AccountId  string    `gorm:"column:account_id;type:varchar(26);index;not null"`
	CategoryId *string   `gorm:"column:category_id;type:varchar(26);index"`
	Date       time.Time `gorm:"type:timestamp;not null"`
	Label      string    `gorm:"type:varchar(255);not null"`
	Notes      string    `gorm:"type:text"`
	Amount     float64   `gorm:"type:decimal(15,2);not null"`
	Type       string    `gorm:"type:varchar(15);not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (transactionDB) TableName() string {
	return "transactions"
}

func toDomainTransaction(tdb *transactionDB) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, err
	}

	ownerID, err := uuid.Parse(tdb.OwnerId)
	if err != nil {
		return nil, err
	}

	accountID, err := pkg.ParseULID(tdb.AccountId)
	if err != nil {
		return nil, err
	}

	var categoryID *ulid.ULID
	if tdb.CategoryId != nil && *tdb.CategoryId != "" {
		parsed, err := pkg.ParseULID(*tdb.CategoryId)
		if err == nil {
			categoryID = &parsed
		}
	}

	return &transaction.Transaction{
		Id:         id,
		OwnerId:    ownerID,
		AccountId:  accountID,
		CategoryId: categoryID,
		Date:       tdb.Date,
		Label:      tdb.Label,
		Notes:      tdb.Notes,
		Amount:     tdb.Amount,
		Type:       transaction.Types(tdb.Type),
		CreatedAt:  tdb.CreatedAt,
		UpdatedAt:  tdb.UpdatedAt,
	}, nil
}

func toDBTransaction(t *transaction.Transaction) *transactionDB {
	var categoryID *string
	if t.CategoryId != nil {
		s := t.CategoryId.String()
		categoryID = &s
	}

	return &transactionDB{
		Id:         t.Id.String(),
		OwnerId:    t.OwnerId.String(),
		AccountId:  t.AccountId.String(),
		CategoryId: categoryID,
		Date:       t.Date,
		Label:      t.Label,
		Notes:      t.Notes,
		Amount:     t.Amount,
		Type:       string(t.Type),
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return r.DB.WithContext(ctx).Table("transactions").Create(tdb).Error
}

func (r *TransactionRepository) CreateWithTx(ctx context.Context, tx interface{}, t *transaction.Transaction) error {
	dbTx := tx.(*gorm.DB)
	tdb := toDBTransaction(t)
	return dbTx.WithContext(ctx).Table("transactions").Create(tdb).Error
}

func (r *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	return r.updateIn(r.DB.WithContext(ctx), t)
}

func (r *TransactionRepository) UpdateWithTx(ctx context.Context, tx interface{}, t *transaction.Transaction) error {
	dbTx := tx.(*gorm.DB)
	return r.updateIn(dbTx.WithContext(ctx), t)
}

// updateIn saves the full row so cleared fields (notes, category) persist.
func (r *TransactionRepository) updateIn(db *gorm.DB, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return db.Model(&transactionDB{}).
		Where("id = ? AND owner_id = ?", tdb.Id, tdb.OwnerId).
		Select("AccountId", "CategoryId", "Date", "Label", "Notes", "Amount", "Type", "UpdatedAt").
		Updates(tdb).Error
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID ulid.ULID) error {
	return r.DB.WithContext(ctx).
		Where("id = ?", transactionID.String()).
		Delete(&transactionDB{}).Error
}

func (r *TransactionRepository) GetByIDAndOwner(ctx context.Context, transactionID ulid.ULID, ownerID uuid.UUID) (*transaction.Transaction, error) {
	var tdb transactionDB
	err := r.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", transactionID.String(), ownerID.String()).
		First(&tdb).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return toDomainTransaction(&tdb)
}

func (r *TransactionRepository) GetAll(ctx context.Context, ownerID uuid.UUID, accountID *ulid.ULID, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("transactions").Where("owner_id = ?", ownerID.String())
	if accountID != nil {
		baseQuery = baseQuery.Where("account_id = ?", accountID.String())
	}
	return pkg.Paginate(baseQuery, pagination, "date DESC, created_at DESC", toDomainTransaction)
}

func (r *TransactionRepository) ClearCategory(ctx context.Context, categoryID ulid.ULID, ownerID uuid.UUID) error {
	return r.DB.WithContext(ctx).Model(&transactionDB{}).
		Where("category_id = ? AND owner_id = ?", categoryID.String(), ownerID.String()).
		UpdateColumn("category_id", gorm.Expr("NULL")).Error
}
