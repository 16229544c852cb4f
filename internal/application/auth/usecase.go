package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/mraposo/cobranca-api/internal/application/dto"
	"github.com/mraposo/cobranca-api/internal/domain"
	"github.com/mraposo/cobranca-api/internal/domain/entity"
	"github.com/mraposo/cobranca-api/internal/domain/repository"
	"github.com/mraposo/cobranca-api/pkg/jwt"
)

// JWTConfig configuração para emissão de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação e perfil: cadastro, login e
// edição dos próprios dados.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Register cria um usuário: valida, hasheia a senha com bcrypt e persiste.
// Devolve ErrDuplicateEmail se o e-mail já está cadastrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterUserRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica e-mail/senha, emite o JWT e devolve token + usuário.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		User:  *toUserResponse(user),
		Token: token,
	}, nil
}

// UpdateProfile edita os dados do usuário autenticado. A unicidade de e-mail
// e CPF exclui o próprio registro; senha vazia mantém a atual.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID int64, in dto.UpdateProfileRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	inUse, err := uc.users.EmailInUse(ctx, in.Email, userID)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrDuplicateEmail
	}
	if in.CPF != nil && *in.CPF != "" {
		inUse, err = uc.users.CPFInUse(ctx, *in.CPF, userID)
		if err != nil {
			return err
		}
		if inUse {
			return domain.ErrDuplicateCPF
		}
	}
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	user.Name = in.Name
	user.Email = in.Email
	// cpf e telefone ausentes no body preservam o valor gravado.
	if in.CPF != nil {
		user.CPF = in.CPF
	}
	if in.Phone != nil {
		user.Phone = in.Phone
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}
	return uc.users.Update(ctx, user)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		CPF:   u.CPF,
		Phone: u.Phone,
	}
}
