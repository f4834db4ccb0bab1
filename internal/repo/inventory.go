package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicadesk/clinicadesk/internal/db"
	"github.com/clinicadesk/clinicadesk/internal/model"
)

// InventoryRepository manages stocked supplies and their purchase history.
type InventoryRepository struct {
	gateway *db.Gateway
}

// NewInventoryRepository creates an inventory repository.
func NewInventoryRepository(gateway *db.Gateway) *InventoryRepository {
	return &InventoryRepository{gateway: gateway}
}

// CreateItem inserts a supply and returns it with the assigned id.
func (r *InventoryRepository) CreateItem(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error) {
	if item.UpdatedAt == "" {
		item.UpdatedAt = time.Now().Format(time.RFC3339)
	}
	if item.MinimumQuantity == 0 {
		item.MinimumQuantity = 5
	}

	res, err := r.gateway.Mutate(ctx, `
		INSERT INTO estoque (nome, categoria, quantidade, limite_minimo,
			fornecedor_nome, fornecedor_telefone, fornecedor_endereco,
			ultima_atualizacao, notas)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.Name, item.Category, item.Quantity, item.MinimumQuantity,
		item.SupplierName, item.SupplierPhone, item.SupplierAddress,
		item.UpdatedAt, item.Notes)
	if err != nil {
		return model.InventoryItem{}, fmt.Errorf("failed to create inventory item: %w", err)
	}

	item.ID = res.LastInsertID
	return item, nil
}

// AdjustQuantity adds delta (which may be negative) to an item's stock and
// stamps the update time.
func (r *InventoryRepository) AdjustQuantity(ctx context.Context, id, delta int64) error {
	res, err := r.gateway.Mutate(ctx, `
		UPDATE estoque SET quantidade = quantidade + ?, ultima_atualizacao = ?
		WHERE id = ?`,
		delta, time.Now().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to adjust quantity: %w", err)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("inventory item %d not found", id)
	}
	return nil
}

// DeleteItem removes a supply; its purchase history cascades away with it.
func (r *InventoryRepository) DeleteItem(ctx context.Context, id int64) error {
	_, err := r.gateway.Mutate(ctx, `DELETE FROM estoque WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return nil
}

// ListItems returns all supplies ordered by name.
func (r *InventoryRepository) ListItems(ctx context.Context) ([]model.InventoryItem, error) {
	rs, err := r.gateway.Read(ctx, `SELECT * FROM estoque ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return scanItems(rs), nil
}

// ListBelowMinimum returns supplies at or under their restock threshold.
func (r *InventoryRepository) ListBelowMinimum(ctx context.Context) ([]model.InventoryItem, error) {
	rs, err := r.gateway.Read(ctx,
		`SELECT * FROM estoque WHERE quantidade <= limite_minimo ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("failed to list low-stock items: %w", err)
	}
	return scanItems(rs), nil
}

// RecordPurchase stores a restock and bumps the item's quantity. The item
// must exist; a dangling item id is rejected by the store.
func (r *InventoryRepository) RecordPurchase(ctx context.Context, p model.InventoryPurchase) (model.InventoryPurchase, error) {
	res, err := r.gateway.Mutate(ctx, `
		INSERT INTO estoque_compras (itemId, data_compra, quantidade_comprada, valor_lote, fornecedor_compra)
		VALUES (?, ?, ?, ?, ?)`,
		p.ItemID, p.Date, p.Quantity, p.LotValue.InexactFloat64(), p.Supplier)
	if err != nil {
		return model.InventoryPurchase{}, fmt.Errorf("failed to record purchase: %w", err)
	}
	p.ID = res.LastInsertID

	if err := r.AdjustQuantity(ctx, p.ItemID, p.Quantity); err != nil {
		return model.InventoryPurchase{}, err
	}
	return p, nil
}

// ListPurchases returns an item's restock history, most recent first.
func (r *InventoryRepository) ListPurchases(ctx context.Context, itemID int64) ([]model.InventoryPurchase, error) {
	rs, err := r.gateway.Read(ctx,
		`SELECT * FROM estoque_compras WHERE itemId = ? ORDER BY data_compra DESC`, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	purchases := make([]model.InventoryPurchase, 0, rs.Len())
	for _, row := range rs.Rows {
		purchases = append(purchases, model.InventoryPurchase{
			ID:       rowInt(row, "id"),
			ItemID:   rowInt(row, "itemId"),
			Date:     rowString(row, "data_compra"),
			Quantity: rowInt(row, "quantidade_comprada"),
			LotValue: rowDecimal(row, "valor_lote"),
			Supplier: rowString(row, "fornecedor_compra"),
		})
	}
	return purchases, nil
}

func scanItems(rs *db.RecordSet) []model.InventoryItem {
	items := make([]model.InventoryItem, 0, rs.Len())
	for _, row := range rs.Rows {
		items = append(items, model.InventoryItem{
			ID:              rowInt(row, "id"),
			Name:            rowString(row, "nome"),
			Category:        rowString(row, "categoria"),
			Quantity:        rowInt(row, "quantidade"),
			MinimumQuantity: rowInt(row, "limite_minimo"),
			SupplierName:    rowString(row, "fornecedor_nome"),
			SupplierPhone:   rowString(row, "fornecedor_telefone"),
			SupplierAddress: rowString(row, "fornecedor_endereco"),
			UpdatedAt:       rowString(row, "ultima_atualizacao"),
			Notes:           rowString(row, "notas"),
		})
	}
	return items
}
