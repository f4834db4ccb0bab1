package db

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// createTables holds the table batch in creation order. Parents come before
// the tables that reference them.
var createTables = []string{
	`CREATE TABLE IF NOT EXISTS pacientes (
		id TEXT PRIMARY KEY,
		nome TEXT NOT NULL,
		telefone TEXT,
		email TEXT,
		nascimento TEXT,
		cpf TEXT,
		endereco TEXT,
		observacoes TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS consultas (
		id TEXT PRIMARY KEY,
		pacienteId TEXT NOT NULL,
		data TEXT NOT NULL,
		hora TEXT,
		tipo TEXT,
		status TEXT,
		duracao TEXT,
		observacoes TEXT,
		FOREIGN KEY (pacienteId) REFERENCES pacientes(id)
	)`,
	`CREATE TABLE IF NOT EXISTS anamnese (
		pacienteId TEXT PRIMARY KEY,
		nome TEXT,
		cpf TEXT,
		data_nascimento TEXT,
		endereco TEXT,
		cep TEXT,
		fone TEXT,
		fone_emergencia TEXT,
		email TEXT,
		falar_com TEXT,
		tratamento_medico INTEGER,
		tratamento_medico_qual TEXT,
		tomando_medicamento INTEGER,
		tomando_medicamento_qual TEXT,
		alergia_doenca INTEGER,
		alergia_doenca_qual TEXT,
		diabetico INTEGER,
		doenca_coracao INTEGER,
		hipertenso INTEGER,
		hemofilico INTEGER,
		pes_incham INTEGER,
		tosse_persistente INTEGER,
		alergia_anestesia INTEGER,
		alergia_anestesia_qual TEXT,
		submetido_anestesia INTEGER,
		teve_hemorragia INTEGER,
		tem_vicio INTEGER,
		tem_vicio_qual TEXT,
		esta_gravida INTEGER,
		sofre_epilepsia INTEGER,
		algo_a_declarar TEXT,
		algo_a_declarar_qual TEXT,
		odontograma_anotacoes TEXT,
		FOREIGN KEY (pacienteId) REFERENCES pacientes(id)
	)`,
	`CREATE TABLE IF NOT EXISTS tratamentos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		pacienteId TEXT NOT NULL,
		data TEXT NOT NULL,
		descricao TEXT NOT NULL,
		valor_total REAL NOT NULL CHECK (valor_total >= 0),
		status_pagamento TEXT NOT NULL,
		FOREIGN KEY (pacienteId) REFERENCES pacientes(id)
	)`,
	`CREATE TABLE IF NOT EXISTS pagamentos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tratamentoId INTEGER NOT NULL,
		data TEXT NOT NULL,
		valor_pago REAL NOT NULL CHECK (valor_pago >= 0),
		forma_pagamento TEXT NOT NULL,
		FOREIGN KEY (tratamentoId) REFERENCES tratamentos(id)
	)`,
	`CREATE TABLE IF NOT EXISTS estoque (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT NOT NULL,
		categoria TEXT,
		quantidade INTEGER NOT NULL DEFAULT 0,
		limite_minimo INTEGER NOT NULL DEFAULT 5,
		fornecedor_nome TEXT,
		fornecedor_telefone TEXT,
		fornecedor_endereco TEXT,
		ultima_atualizacao TEXT,
		notas TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS estoque_compras (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		itemId INTEGER NOT NULL,
		data_compra TEXT NOT NULL,
		quantidade_comprada INTEGER NOT NULL,
		valor_lote REAL,
		fornecedor_compra TEXT,
		FOREIGN KEY (itemId) REFERENCES estoque (id) ON DELETE CASCADE
	)`,
}

// migrations holds additive column migrations applied after table creation.
// "duplicate column" means the migration already ran and is treated as
// success; any other error is logged and swallowed.
var migrations = []string{
	`ALTER TABLE pacientes ADD COLUMN dataCadastro TEXT`,
}

// Provision idempotently creates the schema. The table batch runs inside one
// transaction; no other operation is accepted until it completes. Running
// Provision twice against the same store is a no-op.
func (d *DB) Provision(ctx context.Context) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin provisioning: %w", err)
	}

	for _, stmt := range createTables {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit provisioning: %w", err)
	}

	for _, stmt := range migrations {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column") {
				continue
			}
			d.log.Warn("migration skipped", zap.String("stmt", stmt), zap.Error(err))
		}
	}

	d.ready.Store(true)
	d.log.Info("schema provisioned", zap.Int("tables", len(createTables)))
	return nil
}
