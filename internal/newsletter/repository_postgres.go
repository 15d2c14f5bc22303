package newsletter

import "database/sql"

const subscriberColumns = `id, email, name, active, subscribed_at`

const (
	getSubscriberQuery = `SELECT ` + subscriberColumns + `
		FROM newsletter_subscriber
		WHERE lower(email) = lower($1)`

	insertSubscriberQuery = `INSERT INTO newsletter_subscriber (email, name, active, subscribed_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	updateSubscriberQuery = `UPDATE newsletter_subscriber
		SET email = $2, name = $3, active = $4
		WHERE id = $1`

	listSubscribersQuery = `SELECT ` + subscriberColumns + `
		FROM newsletter_subscriber
		ORDER BY subscribed_at DESC`

	listSubscribersByActiveQuery = `SELECT ` + subscriberColumns + `
		FROM newsletter_subscriber
		WHERE active = $1
		ORDER BY subscribed_at DESC`
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(email string) (Subscriber, error) {
	sub, err := scanSubscriber(r.db.QueryRow(getSubscriberQuery, email))
	if err == sql.ErrNoRows {
		return Subscriber{}, ErrNotFound
	}
	if err != nil {
		return Subscriber{}, err
	}
	return sub, nil
}

func (r *PostgresRepository) Create(sub Subscriber) (Subscriber, error) {
	err := r.db.QueryRow(insertSubscriberQuery, sub.Email, sub.Name, sub.Active, sub.SubscribedAt).Scan(&sub.ID)
	if err != nil {
		return Subscriber{}, err
	}
	return sub, nil
}

func (r *PostgresRepository) Update(id int, sub Subscriber) (Subscriber, error) {
	res, err := r.db.Exec(updateSubscriberQuery, id, sub.Email, sub.Name, sub.Active)
	if err != nil {
		return Subscriber{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Subscriber{}, ErrNotFound
	}
	sub.ID = id
	return sub, nil
}

func (r *PostgresRepository) List(active *bool) ([]Subscriber, error) {
	var rows *sql.Rows
	var err error
	if active != nil {
		rows, err = r.db.Query(listSubscribersByActiveQuery, *active)
	} else {
		rows, err = r.db.Query(listSubscribersQuery)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subscribers := make([]Subscriber, 0)
	for rows.Next() {
		sub, err := scanSubscriber(rows)
		if err != nil {
			return nil, err
		}
		subscribers = append(subscribers, sub)
	}
	return subscribers, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubscriber(s rowScanner) (Subscriber, error) {
	var sub Subscriber
	var name sql.NullString
	if err := s.Scan(&sub.ID, &sub.Email, &name, &sub.Active, &sub.SubscribedAt); err != nil {
		return Subscriber{}, err
	}
	if name.Valid {
		sub.Name = &name.String
	}
	return sub, nil
}
