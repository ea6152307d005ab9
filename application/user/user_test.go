package user_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	appuser "github.com/adityapras/wms/application/user"
	"github.com/adityapras/wms/cmd/config"
	"github.com/adityapras/wms/constant"
	redismocks "github.com/adityapras/wms/mocks/repository/redis"
	usermocks "github.com/adityapras/wms/mocks/repository/user"
	"github.com/adityapras/wms/model"
	cerr "github.com/adityapras/wms/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-key-for-jwt-signing",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new user",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					CompanyID: 9,
					Name:      "Test User",
					Email:     "test@example.com",
					Phone:     "081234567890",
					Password:  "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "081234567890"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.CompanyID == 9 &&
							ent.Name == "Test User" &&
							ent.Email == "test@example.com" &&
							ent.Phone == "081234567890" &&
							ent.PasswordHash != ""
					})).
					Return(&model.UserEntity{
						ID:           1,
						CompanyID:    9,
						Name:         "Test User",
						Email:        "test@example.com",
						Phone:        "081234567890",
						PasswordHash: "hashed_password",
						CreatedAt:    time.Now(),
					}, nil).
					Once()
			},
			want: &model.RegisterResponse{
				Name:  "Test User",
				Email: "test@example.com",
			},
			wantErr: false,
		},
		{
			name: "error: email already exists",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					CompanyID: 9,
					Name:      "Test User",
					Email:     "existing@example.com",
					Phone:     "081234567890",
					Password:  "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "existing@example.com"}).
					Return(&model.UserEntity{
						ID:    1,
						Email: "existing@example.com",
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: phone already exists",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					CompanyID: 9,
					Name:      "Test User",
					Email:     "test@example.com",
					Phone:     "081111111111",
					Password:  "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "081111111111"}).
					Return(&model.UserEntity{
						ID:    1,
						Phone: "081111111111",
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: repository Create returns error",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					CompanyID: 9,
					Name:      "Test User",
					Email:     "test@example.com",
					Phone:     "081234567890",
					Password:  "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "081234567890"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, errors.New("create failed")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				config:    testAuthConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appuser.NewUserApp(f.config, f.userRepo, f.redisRepo)

			got, err := app.Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.LoginRequest
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.LoginResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login with email",
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Identifier: "test@example.com",
					Password:   "password123",
				},
			},
			mockCall: func(f fields) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{
						ID:           1,
						CompanyID:    9,
						Name:         "Test User",
						Email:        "test@example.com",
						Phone:        "081234567890",
						PasswordHash: string(hashedPassword),
						CreatedAt:    time.Now(),
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(nil).
					Once()
			},
			want: &model.LoginResponse{
				Name:  "Test User",
				Email: "test@example.com",
			},
			wantErr: false,
		},
		{
			name: "success: login with phone",
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Identifier: "081234567890",
					Password:   "password123",
				},
			},
			mockCall: func(f fields) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "081234567890"}).
					Return(&model.UserEntity{
						ID:           1,
						CompanyID:    9,
						Name:         "Test User",
						Email:        "test@example.com",
						Phone:        "081234567890",
						PasswordHash: string(hashedPassword),
						CreatedAt:    time.Now(),
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(nil).
					Once()
			},
			want: &model.LoginResponse{
				Name:  "Test User",
				Email: "test@example.com",
			},
			wantErr: false,
		},
		{
			name: "error: user not found",
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Identifier: "notfound@example.com",
					Password:   "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "notfound@example.com"}).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: invalid password",
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Identifier: "test@example.com",
					Password:   "wrongpassword",
				},
			},
			mockCall: func(f fields) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{
						ID:           1,
						Name:         "Test User",
						Email:        "test@example.com",
						PasswordHash: string(hashedPassword),
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: SetSession returns error",
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Identifier: "test@example.com",
					Password:   "password123",
				},
			},
			mockCall: func(f fields) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{
						ID:           1,
						Name:         "Test User",
						Email:        "test@example.com",
						PasswordHash: string(hashedPassword),
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(errors.New("redis error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				config:    testAuthConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appuser.NewUserApp(f.config, f.userRepo, f.redisRepo)

			got, err := app.Login(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Name != tt.want.Name || got.Email != tt.want.Email {
				t.Fatalf("Login() = %+v, want %+v", got, tt.want)
			}
			if got.Token == "" {
				t.Fatal("Login() token should not be empty")
			}
		})
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	login := func(t *testing.T, userRepo *usermocks.UserRepository, redisRepo *redismocks.Repository, cfg *config.Config) string {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		userRepo.On("Get", mock.Anything, mock.Anything).Return(&model.UserEntity{
			ID:           1,
			CompanyID:    9,
			PasswordHash: string(hashedPassword),
		}, nil).Once()
		redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), time.Hour).Return(nil).Once()

		app := appuser.NewUserApp(cfg, userRepo, redisRepo)
		resp, err := app.Login(context.Background(), &model.LoginRequest{
			Identifier: "test@example.com",
			Password:   "password123",
		})
		if err != nil {
			t.Fatalf("login for token: %v", err)
		}
		return resp.Token
	}

	t.Run("success: valid token resolves user and company", func(t *testing.T) {
		cfg := testAuthConfig()
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)
		token := login(t, userRepo, redisRepo, cfg)

		redisRepo.
			On("GetSession", mock.Anything, mock.AnythingOfType("string")).
			Return(uint64(1), nil).
			Once()

		app := appuser.NewUserApp(cfg, userRepo, redisRepo)
		session, err := app.ValidateToken(context.Background(), token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if session.UserID != 1 || session.CompanyID != 9 {
			t.Fatalf("ValidateToken() = %+v, want user 1 company 9", session)
		}
	})

	t.Run("error: malformed token", func(t *testing.T) {
		cfg := testAuthConfig()
		app := appuser.NewUserApp(cfg, usermocks.NewUserRepository(t), redismocks.NewRepository(t))

		if _, err := app.ValidateToken(context.Background(), "invalid.token.string"); !cerr.Is(err, constant.ErrUnauthorize) {
			t.Fatalf("ValidateToken() error = %v, want unauthorized", err)
		}
	})

	t.Run("error: session revoked in redis", func(t *testing.T) {
		cfg := testAuthConfig()
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)
		token := login(t, userRepo, redisRepo, cfg)

		redisRepo.
			On("GetSession", mock.Anything, mock.AnythingOfType("string")).
			Return(uint64(0), errors.New("session not found")).
			Once()

		app := appuser.NewUserApp(cfg, userRepo, redisRepo)
		if _, err := app.ValidateToken(context.Background(), token); !cerr.Is(err, constant.ErrUnauthorize) {
			t.Fatalf("ValidateToken() error = %v, want unauthorized", err)
		}
	})
}
