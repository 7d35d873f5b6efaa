package repos

import (
	"adminpanel/internal/domain"

	"github.com/jmoiron/sqlx"
)

type GuestRepo struct{ DB *sqlx.DB }

func NewGuestRepo(db *sqlx.DB) *GuestRepo { return &GuestRepo{DB: db} }

func (r *GuestRepo) List() ([]domain.Guest, error) {
	var out []domain.Guest
	err := r.DB.Select(&out, `SELECT id,name,email,bio,phone,
	                                 created_at,COALESCE(updated_at,'') AS updated_at
	                            FROM guests`)
	return out, err
}

func (r *GuestRepo) ByID(id string) (*domain.Guest, error) {
	var g domain.Guest
	err := r.DB.Get(&g, `SELECT id,name,email,bio,phone,
	                            created_at,COALESCE(updated_at,'') AS updated_at
	                       FROM guests WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GuestRepo) Create(g *domain.Guest) error {
	_, err := r.DB.Exec(`INSERT INTO guests(id,name,email,bio,phone)
	                      VALUES(?,?,?,?,?)`,
		g.ID, g.Name, g.Email, g.Bio, g.Phone)
	return err
}

func (r *GuestRepo) Update(g *domain.Guest) error {
	_, err := r.DB.Exec(`UPDATE guests SET name=?,email=?,bio=?,phone=?,updated_at=CURRENT_TIMESTAMP
	                      WHERE id=?`, g.Name, g.Email, g.Bio, g.Phone, g.ID)
	return err
}

func (r *GuestRepo) Delete(id string) error {
	_, err := r.DB.Exec(`DELETE FROM guests WHERE id=?`, id)
	return err
}

func (r *GuestRepo) EmailTaken(email string) (bool, error) {
	var n int
	err := r.DB.Get(&n, `SELECT COUNT(*) FROM guests WHERE LOWER(email)=LOWER(?)`, email)
	return n > 0, err
}

func (r *GuestRepo) EmailTakenByOther(email, id string) (bool, error) {
	var n int
	err := r.DB.Get(&n, `SELECT COUNT(*) FROM guests WHERE LOWER(email)=LOWER(?) AND id!=?`, email, id)
	return n > 0, err
}
