package di

import (
	"tutorials/infras/postgres"
	"tutorials/transport/http"
)

func providePinger(conn *postgres.Connection) http.Pinger {
	return conn.DB
}
