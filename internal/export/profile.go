package export

// Profile declares how one entity is exported: the denormalizing query and
// the columns withheld from the output. Keeping the exclusions next to the
// query avoids the per-call-site drift the exclusion lists used to suffer.
//
// Internal identifiers and foreign keys are excluded wherever the joined
// human-readable fields supersede them, so the exported files are
// self-describing without requiring a join in the spreadsheet tool.
type Profile struct {
	// Name is the entity name; the output file is <Name>.csv.
	Name string
	// Query left-joins related human-readable fields into the result.
	Query string
	// Exclude lists columns withheld from the export.
	Exclude []string
}

// Profiles lists the seven exported entities. Queries run in this order,
// strictly one after another.
var Profiles = []Profile{
	{
		Name:    "pacientes",
		Query:   `SELECT * FROM pacientes`,
		Exclude: []string{"id"},
	},
	{
		Name: "consultas",
		Query: `SELECT c.*, p.nome AS nome_paciente, p.cpf AS cpf_paciente
			FROM consultas c
			LEFT JOIN pacientes p ON c.pacienteId = p.id`,
		Exclude: []string{"id", "pacienteId"},
	},
	{
		Name: "anamnese",
		Query: `SELECT a.*, p.nome AS nome_paciente, p.cpf AS cpf_paciente
			FROM anamnese a
			LEFT JOIN pacientes p ON a.pacienteId = p.id`,
		Exclude: []string{
			"pacienteId", "nome", "cpf", "data_nascimento", "endereco",
			"cep", "fone", "fone_emergencia", "email", "falar_com",
		},
	},
	{
		Name: "tratamentos",
		Query: `SELECT t.*, p.nome AS nome_paciente, p.cpf AS cpf_paciente
			FROM tratamentos t
			LEFT JOIN pacientes p ON t.pacienteId = p.id`,
		Exclude: []string{"id", "pacienteId"},
	},
	{
		Name: "pagamentos",
		Query: `SELECT pg.*, t.descricao AS tratamento_descricao, p.nome AS nome_paciente
			FROM pagamentos pg
			LEFT JOIN tratamentos t ON pg.tratamentoId = t.id
			LEFT JOIN pacientes p ON t.pacienteId = p.id`,
		Exclude: []string{"id", "tratamentoId"},
	},
	{
		Name:    "estoque",
		Query:   `SELECT * FROM estoque`,
		Exclude: []string{"id"},
	},
	{
		Name: "estoque_compras",
		Query: `SELECT ec.*, e.nome AS nome_item
			FROM estoque_compras ec
			LEFT JOIN estoque e ON ec.itemId = e.id`,
		Exclude: []string{"id", "itemId"},
	},
}
