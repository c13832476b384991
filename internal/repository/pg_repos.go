package repository

import (
	"context"

	"github.com/PedroABernis/InventoryManager/internal/dto"
	"github.com/PedroABernis/InventoryManager/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORM-backed implementations, selected with STORAGE_DRIVER=postgres.
// Same contracts as the local store repos; services cannot tell them apart.

// ── Products ─────────────────────────────────────────────────────────────────

type pgProductRepo struct{ db *gorm.DB }

func (r *pgProductRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pgProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *pgProductRepo) FindByName(ctx context.Context, name string) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *pgProductRepo) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{})

	switch filter.Active {
	case "false":
		q = q.Where("active = false")
	case "all":
		// no filter
	default:
		q = q.Where("active = true")
	}
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.SupplierID != "" {
		q = q.Where("supplier_id = ?", filter.SupplierID)
	}
	switch filter.PriceSort {
	case "asc":
		q = q.Order("price ASC")
	case "desc":
		q = q.Order("price DESC")
	default:
		q = q.Order("name ASC")
	}

	var products []model.Product
	err := q.Find(&products).Error
	return products, err
}

func (r *pgProductRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *pgProductRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ── Suppliers ────────────────────────────────────────────────────────────────

type pgSupplierRepo struct{ db *gorm.DB }

func (r *pgSupplierRepo) Create(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *pgSupplierRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	var s model.Supplier
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *pgSupplierRepo) FindByName(ctx context.Context, name string) (*model.Supplier, error) {
	var s model.Supplier
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&s).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *pgSupplierRepo) List(ctx context.Context, filter dto.SupplierFilter) ([]model.Supplier, error) {
	q := r.db.WithContext(ctx).Model(&model.Supplier{})
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	var suppliers []model.Supplier
	err := q.Order("name ASC").Find(&suppliers).Error
	return suppliers, err
}

func (r *pgSupplierRepo) Update(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *pgSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Supplier{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ── Customers ────────────────────────────────────────────────────────────────

type pgCustomerRepo struct{ db *gorm.DB }

func (r *pgCustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *pgCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var c model.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *pgCustomerRepo) List(ctx context.Context, filter dto.CustomerFilter) ([]model.Customer, error) {
	q := r.db.WithContext(ctx).Model(&model.Customer{})
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.TaxID != "" {
		q = q.Where("tax_id LIKE ?", "%"+filter.TaxID+"%")
	}
	var customers []model.Customer
	err := q.Order("name ASC").Find(&customers).Error
	return customers, err
}

func (r *pgCustomerRepo) Update(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *pgCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Customer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ── Orders ───────────────────────────────────────────────────────────────────

type pgOrderRepo struct{ db *gorm.DB }

func (r *pgOrderRepo) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *pgOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var o model.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (r *pgOrderRepo) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// Update replaces the order row and its full item set. Items are swapped
// wholesale because drafts edit them freely.
func (r *pgOrderRepo) Update(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", o.ID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Save(o).Error
	})
}

func (r *pgOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Order{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ── Ledger ───────────────────────────────────────────────────────────────────

type pgLedgerRepo struct{ db *gorm.DB }

func (r *pgLedgerRepo) Append(ctx context.Context, txns ...*model.LedgerTransaction) error {
	if len(txns) == 0 {
		return nil
	}
	rows := make([]model.LedgerTransaction, len(txns))
	for i, t := range txns {
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		rows[i] = *t
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *pgLedgerRepo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]model.LedgerTransaction, error) {
	var txns []model.LedgerTransaction
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&txns).Error
	return txns, err
}

// ── Users ────────────────────────────────────────────────────────────────────

type pgUserRepo struct{ db *gorm.DB }

func (r *pgUserRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *pgUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *pgUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *pgUserRepo) Update(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}
