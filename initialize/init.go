package initialize

import (
	"fmt"
	"net/http"

	"facebeat/app/controllers"
	"facebeat/app/db"
	jwtutil "facebeat/app/jwt"
	"facebeat/app/middleware"
	"facebeat/app/models"
	"facebeat/app/repo"
	"facebeat/app/services"
	"facebeat/app/storage"
	"facebeat/config"
	"facebeat/global"
	"facebeat/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Auth     *controllers.AuthController
	Songs    *controllers.SongController
	Scores   *controllers.ScoreController
	Admin    *controllers.AdminController
	UserSvc  *services.UserService
	SongSvc  *services.SongService
	ScoreSvc *services.ScoreService
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	// Connect DB
	gdb, err := db.Connect(db.Config{Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate
	if err := gdb.AutoMigrate(&models.User{}, &models.Song{}, &models.Score{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Media storage
	media, err := storage.NewDiskGateway(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	// Services
	userRepo := repo.NewUserRepository(gdb)
	songRepo := repo.NewSongRepository(gdb)
	scoreRepo := repo.NewScoreRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	songSvc := services.NewSongService(songRepo, media)
	scoreSvc := services.NewScoreService(scoreRepo, songRepo, userRepo)
	if err := userSvc.EnsureAdmin(cfg.Admin.LoginID, cfg.Admin.Password); err != nil {
		global.Logger.Warn().Err(err).Msg("ensure admin account")
	}

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	authCtrl := controllers.NewAuthController(userSvc, signer)
	songCtrl := controllers.NewSongController(songSvc)
	scoreCtrl := controllers.NewScoreController(scoreSvc, cfg.Ranking.DefaultLimit)
	adminCtrl := controllers.NewAdminController(userSvc, songSvc, signer)
	mw := &middleware.Auth{Signer: signer}

	// Router
	h := router.NewRouter(authCtrl, songCtrl, scoreCtrl, adminCtrl, mw, cfg.Storage.Path)
	h = middleware.CORS(h)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Auth: authCtrl, Songs: songCtrl, Scores: scoreCtrl, Admin: adminCtrl, UserSvc: userSvc, SongSvc: songSvc, ScoreSvc: scoreSvc}, nil
}
