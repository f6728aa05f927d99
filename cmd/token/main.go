// token emite un JWT firmado con JWT_SECRET para operar la API sin servicio de login.
//
// Uso: go run ./cmd/token -user <uuid> -company <empresa> -role bodeguero
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Stock-ledger-api/pkg/config"
	"github.com/jhoicas/Stock-ledger-api/pkg/jwt"
)

func main() {
	userID := flag.String("user", "", "ID del usuario (sub)")
	companyID := flag.String("company", "", "empresa por defecto de los movimientos")
	role := flag.String("role", "bodeguero", "admin | bodeguero | rrhh")
	flag.Parse()

	if *userID == "" || *companyID == "" {
		flag.Usage()
		os.Exit(2)
	}
	switch *role {
	case "admin", "bodeguero", "rrhh":
	default:
		fmt.Fprintf(os.Stderr, "Rol inválido %q\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no está definido")
		os.Exit(1)
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, *userID, *companyID, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Firmar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
