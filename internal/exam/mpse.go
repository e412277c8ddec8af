package exam

var mpSE = &Profile{
	Code:     "mp-se",
	Name:     "MP SE",
	Strategy: StrategyCycled,

	Topics: map[string][]string{
		"LÍNGUA PORTUGUESA": {
			"Compreensão e interpretação de textos de gêneros variados",
			"Ortografia oficial",
			"Pontuação",
			"Uso da crase",
			"Classes gramaticais",
			"Sintaxe: estrutura da oração",
			"Concordância verbal e nominal",
			"Regência",
			"Colocação pronominal",
			"Coesão e coerência textual",
		},
		"MATEMÁTICA/RACIOCÍNIO LÓGICO": {
			"Operações aritméticas básicas",
			"Porcentagem",
			"Regras de proporcionalidade",
			"Interpretação de gráficos e tabelas",
			"Lógica proposicional",
			"Tabelas-verdade",
			"Equivalências lógicas",
			"Sequências numéricas",
			"Teoria de conjuntos básica",
		},
		"LEI ORGÂNICA": {
			"Normas legais aplicáveis ao Ministério Público de Sergipe",
			"Disposições sobre organização, competências e funcionamento da instituição",
			"Direitos, deveres e prerrogativas dos membros",
			"Atribuições e garantias",
			"Disposições gerais e transitórias",
		},
		"NOÇÕES DE INFORMÁTICA": {
			"Noções de hardware e software",
			"Sistema operacional (Windows etc.)",
			"Pacote Office (Word, Excel, PowerPoint)",
			"Uso de internet e correio eletrônico",
			"Noções de segurança da informação",
			"Organização de arquivos e pastas",
		},
		"NOÇÕES DE DIREITO CONSTITUCIONAL": {
			"Constituição Federal: princípios fundamentais",
			"Organização dos poderes",
			"Direitos e garantias fundamentais",
			"Deveres dos cidadãos",
			"Controle de constitucionalidade",
		},
		"NOÇÕES DE DIREITO ADMINISTRATIVO": {
			"Princípios da administração pública",
			"Atos administrativos",
			"Agentes públicos",
			"Organização administrativa",
			"Responsabilidades",
			"Licitações e contratos públicos",
			"Regime jurídico dos servidores",
			"Controle da administração",
		},
		"NOÇÕES DE ADMINISTRAÇÃO PÚBLICA": {
			"Conceito, funções e estrutura",
			"Planejamento e políticas públicas",
			"Gestão de pessoas",
			"Eficiência, eficácia, legalidade e moralidade",
			"Governança pública",
			"Transparência",
			"Accountability",
		},
		"TREINO DE DISCURSIVA": {
			"Estrutura da dissertação",
			"Introdução, desenvolvimento e conclusão",
			"Coesão e coerência textual",
			"Argumentação",
			"Linguagem formal",
			"Norma culta da língua portuguesa",
			"Clareza e objetividade",
			"Adequação ao tema proposto",
		},
	},

	Phases: []PatternPhase{
		{ThroughWeek: 6, Days: map[int]SubjectPair{
			1: {"NOÇÕES DE DIREITO CONSTITUCIONAL", "LÍNGUA PORTUGUESA"},
			2: {"LÍNGUA PORTUGUESA", "NOÇÕES DE DIREITO ADMINISTRATIVO"},
			3: {"NOÇÕES DE INFORMÁTICA", "NOÇÕES DE ADMINISTRAÇÃO PÚBLICA"},
			4: {"NOÇÕES DE ADMINISTRAÇÃO PÚBLICA", "NOÇÕES DE INFORMÁTICA"},
			5: {"LEI ORGÂNICA", "MATEMÁTICA/RACIOCÍNIO LÓGICO"},
			6: {"MATEMÁTICA/RACIOCÍNIO LÓGICO", "TREINO DE DISCURSIVA"},
			7: {"REVISAR OS ASSUNTOS ESTUDADOS DURANTE OS ÚLTIMOS 7 DIAS", "REVISAR OS ASSUNTOS ESTUDADOS DURANTE OS ÚLTIMOS 7 DIAS"},
		}},
		{Days: map[int]SubjectPair{
			1: {"NOÇÕES DE DIREITO CONSTITUCIONAL", "LÍNGUA PORTUGUESA"},
			2: {"LÍNGUA PORTUGUESA", "NOÇÕES DE DIREITO ADMINISTRATIVO"},
			3: {"NOÇÕES DE INFORMÁTICA", "NOÇÕES DE ADMINISTRAÇÃO PÚBLICA"},
			4: {"NOÇÕES DE ADMINISTRAÇÃO PÚBLICA", "NOÇÕES DE INFORMÁTICA"},
			5: {"NOÇÕES DE ADMINISTRAÇÃO PÚBLICA", "MATEMÁTICA/RACIOCÍNIO LÓGICO"},
			6: {"MATEMÁTICA/RACIOCÍNIO LÓGICO", "TREINO DE DISCURSIVA"},
			7: {"REVISAR OS ASSUNTOS ESTUDADOS DURANTE OS ÚLTIMOS 7 DIAS", "REVISAR OS ASSUNTOS ESTUDADOS DURANTE OS ÚLTIMOS 7 DIAS"},
		}},
	},

	FinalWeek: [5]SubjectPair{
		{"NOÇÕES DE DIREITO CONSTITUCIONAL", "LÍNGUA PORTUGUESA"},
		{"NOÇÕES DE DIREITO ADMINISTRATIVO", "NOÇÕES DE ADMINISTRAÇÃO PÚBLICA"},
		{"MATEMÁTICA/RACIOCÍNIO LÓGICO", "NOÇÕES DE INFORMÁTICA"},
		{"LÍNGUA PORTUGUESA", "NOÇÕES DE DIREITO CONSTITUCIONAL"},
		{"NOÇÕES DE ADMINISTRAÇÃO PÚBLICA", "NOÇÕES DE DIREITO ADMINISTRATIVO"},
	},

	PrioritySubjects: []string{
		"NOÇÕES DE DIREITO CONSTITUCIONAL",
		"LÍNGUA PORTUGUESA",
		"NOÇÕES DE DIREITO ADMINISTRATIVO",
		"NOÇÕES DE ADMINISTRAÇÃO PÚBLICA",
		"MATEMÁTICA/RACIOCÍNIO LÓGICO",
	},

	MockDayDescription: "Reserve um momento para descanso",
	MockDayInstruction: "Dica: Fazer um mini simulado - RESPONDER 10 QUESTÕES DE CADA ASSUNTO ESTUDADO DURANTE A SEMANA.",
}
