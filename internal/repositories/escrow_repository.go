package repositories

import (
	"context"
	"database/sql"
	"errors"

	"emanetBack/internal/models"
)

var (
	ErrEscrowNotFound = errors.New("escrow transaction not found")
)

type EscrowRepository struct {
	DB *sql.DB
}

func (r *EscrowRepository) CreateTransaction(ctx context.Context, tx models.EscrowTransaction) (models.EscrowTransaction, error) {
	query := `
		INSERT INTO escrow_transactions (id, listing_id, buyer_id, seller_id, amount, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())
	`
	_, err := r.DB.ExecContext(ctx, query,
		tx.ID, tx.ListingID, tx.BuyerID, tx.SellerID, tx.Amount, tx.Status,
	)
	if err != nil {
		return models.EscrowTransaction{}, err
	}
	return tx, nil
}

func (r *EscrowRepository) GetTransactionByID(ctx context.Context, id string) (models.EscrowTransaction, error) {
	query := `
		SELECT id, listing_id, buyer_id, seller_id, amount, status, created_at, updated_at
		FROM escrow_transactions
		WHERE id = ?
	`
	var tx models.EscrowTransaction
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&tx.ID, &tx.ListingID, &tx.BuyerID, &tx.SellerID, &tx.Amount, &tx.Status, &tx.CreatedAt, &tx.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.EscrowTransaction{}, ErrEscrowNotFound
	}
	if err != nil {
		return models.EscrowTransaction{}, err
	}
	return tx, nil
}

func (r *EscrowRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE escrow_transactions SET status = ?, updated_at = NOW() WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrEscrowNotFound
	}
	return nil
}

func (r *EscrowRepository) FetchByUserID(ctx context.Context, userID string) ([]models.EscrowTransaction, error) {
	query := `
		SELECT id, listing_id, buyer_id, seller_id, amount, status, created_at, updated_at
		FROM escrow_transactions
		WHERE buyer_id = ? OR seller_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []models.EscrowTransaction
	for rows.Next() {
		var tx models.EscrowTransaction
		if err := rows.Scan(
			&tx.ID, &tx.ListingID, &tx.BuyerID, &tx.SellerID, &tx.Amount, &tx.Status, &tx.CreatedAt, &tx.UpdatedAt,
		); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
