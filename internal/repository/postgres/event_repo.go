package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"communityevents/internal/domain"
)

// listColumns is the projection shared by the home, past, and search listings.
const listColumns = `e.id, e.title, e.start_datetime, e.end_datetime,
		e.location_city, e.location_venue, e.image_url,
		e.is_free, e.price_cents, c.name AS category`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) ListUpcoming(ctx context.Context, now time.Time) ([]*domain.EventListItem, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events e
		JOIN categories c ON c.id = e.category_id
		WHERE e.status = 'active' AND e.end_datetime > $1
		ORDER BY e.start_datetime ASC
	`, listColumns)
	return r.queryListItems(ctx, query, now)
}

func (r *eventRepository) ListPast(ctx context.Context, now time.Time) ([]*domain.EventListItem, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events e
		JOIN categories c ON c.id = e.category_id
		WHERE e.status = 'active' AND e.end_datetime <= $1
		ORDER BY e.end_datetime DESC
	`, listColumns)
	return r.queryListItems(ctx, query, now)
}

func (r *eventRepository) ListHighlights(ctx context.Context, now time.Time, limit int) ([]*domain.EventHighlight, error) {
	query := `
		SELECT e.id, e.title, e.location_city, e.location_venue, e.start_datetime
		FROM events e
		WHERE e.status = 'active' AND e.end_datetime > $1
		ORDER BY e.start_datetime ASC
		LIMIT $2
	`
	rows, err := r.DB.QueryContext(ctx, query, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	highlights := make([]*domain.EventHighlight, 0)
	for rows.Next() {
		h := &domain.EventHighlight{}
		var title, city, venue sql.NullString
		var start sql.NullTime
		if err := rows.Scan(&h.ID, &title, &city, &venue, &start); err != nil {
			return nil, err
		}
		h.Title = nullString(title)
		h.LocationCity = nullString(city)
		h.LocationVenue = nullString(venue)
		h.StartDatetime = nullTime(start)
		highlights = append(highlights, h)
	}
	return highlights, rows.Err()
}

// Search composes the supplied predicates by conjunction; active status is
// always the first clause.
func (r *eventRepository) Search(ctx context.Context, f domain.SearchFilter) ([]*domain.EventListItem, error) {
	where := []string{"e.status = 'active'"}
	args := []interface{}{}
	n := 1
	if f.StartFrom != nil {
		where = append(where, fmt.Sprintf("e.start_datetime >= $%d", n))
		args = append(args, *f.StartFrom)
		n++
	}
	if f.EndUntil != nil {
		where = append(where, fmt.Sprintf("e.end_datetime <= $%d", n))
		args = append(args, *f.EndUntil)
		n++
	}
	if f.City != nil {
		where = append(where, fmt.Sprintf("e.location_city ILIKE '%%' || $%d || '%%'", n))
		args = append(args, *f.City)
		n++
	}
	if f.CategorySlug != nil {
		where = append(where, fmt.Sprintf("c.slug = $%d", n))
		args = append(args, *f.CategorySlug)
		n++
	}
	query := fmt.Sprintf(`
		SELECT %s
		FROM events e
		JOIN categories c ON c.id = e.category_id
		WHERE %s
		ORDER BY e.start_datetime ASC
	`, listColumns, strings.Join(where, " AND "))
	return r.queryListItems(ctx, query, args...)
}

func (r *eventRepository) queryListItems(ctx context.Context, query string, args ...interface{}) ([]*domain.EventListItem, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.EventListItem, 0)
	for rows.Next() {
		item := &domain.EventListItem{}
		var title, city, venue, image, category sql.NullString
		var start, end sql.NullTime
		var isFree sql.NullBool
		var price sql.NullInt64
		if err := rows.Scan(&item.ID, &title, &start, &end, &city, &venue, &image, &isFree, &price, &category); err != nil {
			return nil, err
		}
		item.Title = nullString(title)
		item.StartDatetime = nullTime(start)
		item.EndDatetime = nullTime(end)
		item.LocationCity = nullString(city)
		item.LocationVenue = nullString(venue)
		item.ImageURL = nullString(image)
		item.IsFree = nullBool(isFree)
		item.PriceCents = nullInt64(price)
		item.Category = nullString(category)
		items = append(items, item)
	}
	return items, rows.Err()
}

// eventColumns is the full events row in insert/update order.
var eventColumns = []string{
	"title", "description", "image_url",
	"location_city", "location_venue",
	"start_datetime", "end_datetime",
	"is_free", "price_cents",
	"goal_amount_cents", "raised_amount_cents",
	"status", "org_id", "category_id",
}

func eventValues(e *domain.Event) []interface{} {
	return []interface{}{
		nullableString(e.Title), nullableString(e.Description), nullableString(e.ImageURL),
		nullableString(e.LocationCity), nullableString(e.LocationVenue),
		nullableTime(e.StartDatetime), nullableTime(e.EndDatetime),
		nullableBool(e.IsFree), nullableInt64(e.PriceCents),
		nullableInt64(e.GoalAmountCents), nullableInt64(e.RaisedAmountCents),
		nullableString(e.Status), nullableInt64(e.OrgID), nullableInt64(e.CategoryID),
	}
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT id, %s
		FROM events
		WHERE id = $1
	`, strings.Join(eventColumns, ", "))
	e := &domain.Event{}
	var row eventRow
	err := r.DB.QueryRowContext(ctx, query, id).Scan(append([]interface{}{&e.ID}, row.targets()...)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	row.apply(e)
	return e, nil
}

func (r *eventRepository) GetDetail(ctx context.Context, id int64) (*domain.EventDetail, error) {
	query := fmt.Sprintf(`
		SELECT e.id, %s,
			c.name AS category_name,
			o.name AS org_name, o.mission AS org_mission, o.website AS org_website
		FROM events e
		JOIN categories c ON c.id = e.category_id
		JOIN organisations o ON o.id = e.org_id
		WHERE e.id = $1
	`, "e."+strings.Join(eventColumns, ", e."))
	d := &domain.EventDetail{}
	var row eventRow
	var categoryName, orgName, orgMission, orgWebsite sql.NullString
	targets := append([]interface{}{&d.ID}, row.targets()...)
	targets = append(targets, &categoryName, &orgName, &orgMission, &orgWebsite)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(targets...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	row.apply(&d.Event)
	d.CategoryName = nullString(categoryName)
	d.OrgName = nullString(orgName)
	d.OrgMission = nullString(orgMission)
	d.OrgWebsite = nullString(orgWebsite)
	return d, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	placeholders := make([]string, len(eventColumns))
	for i := range eventColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(`
		INSERT INTO events (%s)
		VALUES (%s)
		RETURNING id
	`, strings.Join(eventColumns, ", "), strings.Join(placeholders, ", "))
	return r.DB.QueryRowContext(ctx, query, eventValues(e)...).Scan(&e.ID)
}

func (r *eventRepository) Update(ctx context.Context, id int64, e *domain.Event) error {
	setClauses := make([]string, len(eventColumns))
	for i, col := range eventColumns {
		setClauses[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE id = $%d
	`, strings.Join(setClauses, ", "), len(eventColumns)+1)
	result, err := r.DB.ExecContext(ctx, query, append(eventValues(e), id)...)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete runs the registration guard and the delete in one transaction so a
// registration inserted between the two statements cannot orphan itself.
func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM registrations WHERE event_id = $1 LIMIT 1`, id).Scan(&one)
	if err == nil {
		return domain.ErrDeleteBlocked
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}

// eventRow buffers the nullable events columns in eventColumns order.
type eventRow struct {
	title, description, imageURL sql.NullString
	city, venue                  sql.NullString
	start, end                   sql.NullTime
	isFree                       sql.NullBool
	price, goal, raised          sql.NullInt64
	status                       sql.NullString
	orgID, categoryID            sql.NullInt64
}

func (row *eventRow) targets() []interface{} {
	return []interface{}{
		&row.title, &row.description, &row.imageURL,
		&row.city, &row.venue,
		&row.start, &row.end,
		&row.isFree, &row.price,
		&row.goal, &row.raised,
		&row.status, &row.orgID, &row.categoryID,
	}
}

func (row *eventRow) apply(e *domain.Event) {
	e.Title = nullString(row.title)
	e.Description = nullString(row.description)
	e.ImageURL = nullString(row.imageURL)
	e.LocationCity = nullString(row.city)
	e.LocationVenue = nullString(row.venue)
	e.StartDatetime = nullTime(row.start)
	e.EndDatetime = nullTime(row.end)
	e.IsFree = nullBool(row.isFree)
	e.PriceCents = nullInt64(row.price)
	e.GoalAmountCents = nullInt64(row.goal)
	e.RaisedAmountCents = nullInt64(row.raised)
	e.Status = nullString(row.status)
	e.OrgID = nullInt64(row.orgID)
	e.CategoryID = nullInt64(row.categoryID)
}
