package main

import (
	"context"
	"log"

	"github.com/drxagencia/mateus-burger/configs"
	"github.com/drxagencia/mateus-burger/controllers"
	"github.com/drxagencia/mateus-burger/repository"
	"github.com/drxagencia/mateus-burger/routes"
	"github.com/drxagencia/mateus-burger/services"
	"github.com/drxagencia/mateus-burger/ws"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB local: só o armazenamento durável do cache
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	cacheRepo := repository.NewCacheRepository(configs.DB())
	remote := repository.NewEmpresaRepository(cfg.FirebaseDBURL)
	transport := repository.NewPedidoRepository(cfg.FirebaseDBURL)

	status := services.NewStatusService()
	empresas := services.NewEmpresaService(cacheRepo, remote, cfg.CacheTTL)
	cardapios := services.NewCardapioService()
	customizer := services.NewCustomizerService()
	carts := services.NewCartService(status)
	checkout := services.NewCheckoutService()
	pedidos := services.NewPedidoService(transport, cfg.CompanyID)

	hub := ws.NewStatusHub(status)
	status.OnChange(hub.Notify)
	go hub.Run()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	status.Start(ctx)

	// carga inicial em background: aquece o cache e configura a janela de
	// funcionamento antes do primeiro acesso
	go func() {
		emp, err := empresas.Load(ctx, cfg.CompanyID)
		if err != nil {
			log.Printf("carga inicial da empresa falhou: %v", err)
			return
		}
		status.SetJanela(emp.Config.HoraAbre, emp.Config.HoraFecha)
	}()

	r := gin.Default()
	routes.RegisterRoutes(r, &routes.Handlers{
		Empresa:  controllers.NewEmpresaController(empresas, cardapios, status, cfg.CompanyID),
		Cart:     controllers.NewCartController(carts, empresas, cardapios, customizer, cfg.CompanyID),
		Checkout: controllers.NewCheckoutController(carts, checkout, pedidos),
		Status:   controllers.NewStatusController(status),
		Hub:      hub,
	})

	log.Printf("empresa %s ouvindo em :%s", cfg.CompanyID, cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
