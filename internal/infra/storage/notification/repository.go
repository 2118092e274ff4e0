package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	"github.com/campusbook/CB-ReservationService/pkg/dbmetrics"
	"github.com/campusbook/CB-ReservationService/pkg/psqlbuilder"
)

// notificationColumns полный набор колонок таблицы notifications
var notificationColumns = []string{
	"id",
	"recipient_id",
	"title",
	"message",
	"notification_type",
	"read",
	"sent_at",
}

// Repository репозиторий для работы с уведомлениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет уведомление в ящик получателя
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns(
			"recipient_id",
			"title",
			"message",
			"notification_type",
		).
		Values(
			n.RecipientID,
			n.Title,
			n.Message,
			n.Type,
		).
		Suffix("RETURNING id, read, sent_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&n.ID,
		&n.Read,
		&n.SentAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return n, nil
}

// ListByRecipient получает уведомления получателя в обратном
// хронологическом порядке. filter сужает выборку до прочитанных
// или непрочитанных.
func (r *Repository) ListByRecipient(ctx context.Context, recipientID int64, filter domain.NotificationFilter) ([]*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(notificationColumns...).
		From("notifications").
		Where(squirrel.Eq{"recipient_id": recipientID}).
		OrderBy("sent_at DESC", "id DESC")

	switch filter {
	case domain.NotificationFilterUnread:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"read": false})
	case domain.NotificationFilterRead:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"read": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRecipient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRecipient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		var sentAt sql.NullTime

		err := rows.Scan(
			&n.ID,
			&n.RecipientID,
			&n.Title,
			&n.Message,
			&n.Type,
			&n.Read,
			&sentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByRecipient - scan row: %v", ErrScanRow, err)
		}

		n.SentAt = sentAt.Time
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByRecipient - rows error: %v", ErrScanRow, err)
	}

	return notifications, nil
}

// MarkRead помечает уведомление прочитанным.
// Выборка ограничена ящиком получателя: чужое уведомление
// неотличимо от несуществующего. Повторная пометка уже
// прочитанного — no-op, не ошибка.
func (r *Repository) MarkRead(ctx context.Context, id, recipientID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("read", true).
		Where(squirrel.Eq{"id": id, "recipient_id": recipientID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead помечает все уведомления получателя прочитанными.
// На пустом ящике — no-op.
func (r *Repository) MarkAllRead(ctx context.Context, recipientID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("read", true).
		Where(squirrel.Eq{"recipient_id": recipientID, "read": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkAllRead - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkAllRead - execute update: %v", ErrExecQuery, err)
	}

	return nil
}
