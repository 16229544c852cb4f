package repository

import (
	"context"

	"github.com/mraposo/cobranca-api/internal/domain/entity"
)

// UserRepository define o porto de persistência para User.
// As consultas Find* devolvem (nil, nil) quando o registro não existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// EmailInUse e CPFInUse verificam unicidade excluindo o próprio registro
	// (excludeID = 0 considera a tabela inteira).
	EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error)
	CPFInUse(ctx context.Context, cpf string, excludeID int64) (bool, error)
}
