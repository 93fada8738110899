package main

import "os"

const DefaultListenAddr = ":8080"

const (
	listenAddrEnv = "LISTEN_ADDR"
	cellIdsEnv    = "SHEET_CELL_IDS"
)

type AppConfig struct {
	ListenAddr string
	CellIds    string
}

func LoadAppConfig() AppConfig {
	return AppConfig{
		ListenAddr: getEnv(listenAddrEnv, DefaultListenAddr),
		CellIds:    getEnv(cellIdsEnv, DefaultCellIds),
	}
}

func getEnv(name string, fallback string) string {
	if value, ok := os.LookupEnv(name); ok && value != "" {
		return value
	}

	return fallback
}
