package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/venuebook/VB-BookingService/internal/domain"
	"github.com/venuebook/VB-BookingService/pkg/dbmetrics"
	"github.com/venuebook/VB-BookingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const uniqueViolation = "23505"

// bookingColumns полный набор колонок таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"venue_id",
	"owner_id",
	"customer_id",
	"customer_name",
	"event_date",
	"time_slot",
	"guests",
	"customizations",
	"total_amount",
	"receipt_url",
	"receipt_public_id",
	"receipt_uploaded_at",
	"status",
	"cancellation_reason",
	"accepted_at",
	"canceled_at",
	"completed_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Инвариант "не более одного активного бронирования на (venue_id, event_date, time_slot)"
// защищён частичным уникальным индексом; нарушение индекса конвертируется в ErrSlotTaken,
// поэтому даже гонка двух создателей вне транзакции не приводит к двойному бронированию.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	customizations, err := json.Marshal(booking.Customizations)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal customizations: %v", ErrEncode, err)
	}

	var receiptURL, receiptPublicID sql.NullString
	var receiptUploadedAt sql.NullTime
	if booking.Receipt != nil {
		receiptURL = sql.NullString{String: booking.Receipt.URL, Valid: true}
		receiptPublicID = sql.NullString{String: booking.Receipt.PublicID, Valid: true}
		receiptUploadedAt = sql.NullTime{Time: booking.Receipt.UploadedAt, Valid: true}
	}

	booking.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"venue_id",
			"owner_id",
			"customer_id",
			"customer_name",
			"event_date",
			"time_slot",
			"guests",
			"customizations",
			"total_amount",
			"receipt_url",
			"receipt_public_id",
			"receipt_uploaded_at",
			"status",
		).
		Values(
			booking.ID,
			booking.VenueID,
			booking.OwnerID,
			booking.CustomerID,
			booking.CustomerName,
			booking.EventDate,
			booking.TimeSlot,
			booking.Guests,
			customizations,
			booking.TotalAmount,
			receiptURL,
			receiptPublicID,
			receiptUploadedAt,
			booking.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// GetByOwnerID получает список бронирований владельца площадок, новые первыми
func (r *Repository) GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
	return r.getByField(ctx, "owner_id", ownerID, "GetByOwnerID")
}

// GetByCustomerID получает список бронирований клиента, новые первыми
func (r *Repository) GetByCustomerID(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	return r.getByField(ctx, "customer_id", customerID, "GetByCustomerID")
}

func (r *Repository) getByField(ctx context.Context, field, value, method string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{field: value}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, method, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// CountActiveBySlot подсчитывает активные (pending/accepted) бронирования слота.
// Внутри транзакции блокирует найденные строки (FOR UPDATE), чтобы проверка
// доступности и вставка выполнялись атомарно.
func (r *Repository) CountActiveBySlot(ctx context.Context, venueID string, date time.Time, slot domain.TimeSlot) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	// FOR UPDATE несовместим с агрегатами, поэтому выбираем id и считаем строки
	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{
			"venue_id":   venueID,
			"event_date": date,
			"time_slot":  slot,
			"status":     activeStatuses,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveBySlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveBySlot - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("%w: CountActiveBySlot - scan id: %w", ErrScanRow, err)
		}
		count++
	}

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: CountActiveBySlot - rows error: %w", ErrScanRow, err)
	}

	return count, nil
}

// Accept переводит бронирование в accepted с отметкой времени перехода
func (r *Repository) Accept(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusAccepted).
		Set("accepted_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Accept - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Accept")
}

// Cancel переводит бронирование в canceled: записывает причину, отметку времени
// и обнуляет все три поля чека одновременно
func (r *Repository) Cancel(ctx context.Context, id string, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCanceled).
		Set("cancellation_reason", reason).
		Set("canceled_at", squirrel.Expr("NOW()")).
		Set("receipt_url", nil).
		Set("receipt_public_id", nil).
		Set("receipt_uploaded_at", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Cancel")
}

// Delete удаляет бронирование физически, без сохранения истории
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

// DeleteByVenueID удаляет все бронирования площадки и возвращает число удаленных.
// Используется каскадом при удалении площадки.
func (r *Repository) DeleteByVenueID(ctx context.Context, venueID string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByVenueID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByVenueID - execute delete: %w", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByVenueID - get rows affected: %w", ErrExecQuery, err)
	}

	return deleted, nil
}

// ReceiptPublicIDsByVenueID возвращает идентификаторы чеков всех бронирований площадки.
// Нужен каскаду удаления, чтобы не оставлять файлы-сироты во внешнем хранилище.
func (r *Repository) ReceiptPublicIDsByVenueID(ctx context.Context, venueID string) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("receipt_public_id").
		From("bookings").
		Where(squirrel.Eq{"venue_id": venueID}).
		Where(squirrel.NotEq{"receipt_public_id": nil}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReceiptPublicIDsByVenueID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ReceiptPublicIDsByVenueID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	publicIDs := make([]string, 0)
	for rows.Next() {
		var publicID string
		if err := rows.Scan(&publicID); err != nil {
			return nil, fmt.Errorf("%w: ReceiptPublicIDsByVenueID - scan public_id: %w", ErrScanRow, err)
		}
		publicIDs = append(publicIDs, publicID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ReceiptPublicIDsByVenueID - rows error: %w", ErrScanRow, err)
	}

	return publicIDs, nil
}

// execExpectingRow выполняет запрос и конвертирует "0 строк затронуто" в ErrBookingNotFound
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, method string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в доменную модель
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var customizations []byte
	var receiptURL, receiptPublicID, cancellationReason sql.NullString
	var receiptUploadedAt, acceptedAt, canceledAt, completedAt sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.VenueID,
		&booking.OwnerID,
		&booking.CustomerID,
		&booking.CustomerName,
		&booking.EventDate,
		&booking.TimeSlot,
		&booking.Guests,
		&customizations,
		&booking.TotalAmount,
		&receiptURL,
		&receiptPublicID,
		&receiptUploadedAt,
		&booking.Status,
		&cancellationReason,
		&acceptedAt,
		&canceledAt,
		&completedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(customizations) > 0 {
		if err := json.Unmarshal(customizations, &booking.Customizations); err != nil {
			return nil, fmt.Errorf("unmarshal customizations: %v", err)
		}
	}

	// Чек присутствует целиком или отсутствует целиком
	if receiptPublicID.Valid {
		booking.Receipt = &domain.PaymentReceipt{
			URL:        receiptURL.String,
			PublicID:   receiptPublicID.String,
			UploadedAt: receiptUploadedAt.Time,
		}
	}

	if cancellationReason.Valid {
		booking.CancellationReason = &cancellationReason.String
	}
	booking.AcceptedAt = nullTimePtr(acceptedAt)
	booking.CanceledAt = nullTimePtr(canceledAt)
	booking.CompletedAt = nullTimePtr(completedAt)
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
