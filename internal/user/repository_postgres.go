package user

import "database/sql"

const userColumns = `id, email, password, name, created_at, updated_at`

const (
	listUsersQuery = `SELECT ` + userColumns + `
		FROM admin_user
		ORDER BY id`

	getUserByIDQuery = `SELECT ` + userColumns + `
		FROM admin_user
		WHERE id = $1`

	getUserByEmailQuery = `SELECT ` + userColumns + `
		FROM admin_user
		WHERE lower(email) = lower($1)`

	insertUserQuery = `INSERT INTO admin_user (email, password, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	updateUserQuery = `UPDATE admin_user
		SET email = $2, password = $3, name = $4, updated_at = $5
		WHERE id = $1`

	deleteUserQuery = `DELETE FROM admin_user WHERE id = $1`
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []User {
	rows, err := r.db.Query(listUsersQuery)
	if err != nil {
		return []User{}
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return users
		}
		users = append(users, user)
	}
	return users
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	user, err := scanUser(r.db.QueryRow(getUserByIDQuery, id))
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return user, nil
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	user, err := scanUser(r.db.QueryRow(getUserByEmailQuery, email))
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return user, nil
}

func (r *PostgresRepository) Create(user User) (User, error) {
	err := r.db.QueryRow(insertUserQuery, user.Email, user.Password, user.Name, user.CreatedAt, user.UpdatedAt).Scan(&user.ID)
	if err != nil {
		return User{}, err
	}
	return user, nil
}

func (r *PostgresRepository) Update(id int, user User) (User, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return User{}, err
	}
	if user.Email == "" {
		user.Email = existing.Email
	}
	if user.Name == "" {
		user.Name = existing.Name
	}
	if user.Password == "" {
		user.Password = existing.Password
	}

	if _, err := r.db.Exec(updateUserQuery, id, user.Email, user.Password, user.Name, user.UpdatedAt); err != nil {
		return User{}, err
	}
	user.ID = id
	user.CreatedAt = existing.CreatedAt
	return user, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteUserQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(s rowScanner) (User, error) {
	var user User
	var name sql.NullString
	if err := s.Scan(&user.ID, &user.Email, &user.Password, &name, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return User{}, err
	}
	user.Name = name.String
	return user, nil
}
