package exam

var tjCE = &Profile{
	Code:     "tj-ce",
	Name:     "TJ CE",
	Strategy: StrategyChunked,

	Topics: map[string][]string{
		"LÍNGUA PORTUGUESA": {
			"Compreensão e interpretação de textos de gêneros variados",
			"Reconhecimento de tipos e gêneros textuais",
			"Ortografia oficial",
			"Mecanismos de coesão textual (referência, substituição, repetição, conectores, etc.)",
			"Tempos e modos verbais",
			"Estrutura morfossintática do período (classes de palavras, coordenação, subordinação, pontuação, concordância verbal e nominal, regência, crase, colocação pronominal)",
			"Reescrita de frases e parágrafos",
			"Reorganização de estrutura de textos",
		},
		"NOÇÕES DE INFORMÁTICA": {
			"Noções de sistema operacional (Windows)",
			"Edição de textos, planilhas e apresentações (pacote Office)",
			"Correio eletrônico",
			"Busca na internet",
			"Redes sociais",
			"Computação em nuvem",
			"Organização de arquivos/pastas/programas",
			"Segurança da informação: vírus, malwares, antivírus, firewalls etc.",
		},
		"RACIOCÍNIO LÓGICO": {
			"Estruturas lógicas",
			"Analogias, inferências, deduções, conclusões",
			"Lógica proposicional (proposições simples e compostas, tabelas-verdade, equivalências, Leis de De Morgan)",
			"Diagramas lógicos",
			"Lógica de primeira ordem",
			"Princípios de contagem e probabilidade",
			"Operações com conjuntos",
			"Problemas aritméticos, geométricos e matriciais",
		},
		"DIREITO CONSTITUCIONAL": {
			"Constituição Federal de 1988",
			"Princípios fundamentais",
			"Aplicabilidade das normas constitucionais",
			"Normas de eficácia plena, contida e limitada",
			"Normas programáticas",
			"Direitos e garantias fundamentais",
			"Direitos sociais",
			"Direitos de nacionalidade",
			"Direitos políticos",
		},
		"DIREITO ADMINISTRATIVO": {
			"Conceitos básicos de administração pública",
			"Poderes administrativos",
			"Atos administrativos",
			"Licitação e contratos públicos",
			"Responsabilidade civil do Estado",
			"Servidores públicos",
			"Organização administrativa",
		},
		"NOÇÕES DE DIREITO PROCESSUAL CIVIL": {
			"Atos processuais",
			"Petição inicial",
			"Contestação",
			"Audiência",
			"Produção de provas",
			"Sentença",
			"Cumprimento de sentença",
			"Nulidades",
			"Recursos",
			"Procedimentos especiais",
		},
		"NOÇÕES DE DIREITO PROCESSUAL PENAL": {
			"Inquérito policial",
			"Ação penal",
			"Citação e intimação",
			"Prisões e medidas cautelares",
			"Provas",
			"Nulidades",
			"Processos e procedimentos",
			"Recursos",
			"Habeas corpus",
			"Execução penal",
			"Disposições legais relevantes",
		},
	},

	Phases: []PatternPhase{
		{Days: map[int]SubjectPair{
			1: {"DIREITO CONSTITUCIONAL", "LÍNGUA PORTUGUESA"},
			2: {"LÍNGUA PORTUGUESA", "DIREITO ADMINISTRATIVO"},
			3: {"NOÇÕES DE INFORMÁTICA", "NOÇÕES DE DIREITO PROCESSUAL CIVIL"},
			4: {"NOÇÕES DE DIREITO PROCESSUAL CIVIL", "NOÇÕES DE DIREITO PROCESSUAL PENAL"},
			5: {"NOÇÕES DE DIREITO PROCESSUAL PENAL", "RACIOCÍNIO LÓGICO"},
			6: {"RACIOCÍNIO LÓGICO", "TREINO DE REDAÇÃO"},
			7: {"REVISAR OS ASSUNTOS ESTUDADOS DURANTE OS ÚLTIMOS 7 DIAS", "REVISAR OS ASSUNTOS ESTUDADOS DURANTE OS ÚLTIMOS 7 DIAS"},
		}},
	},

	FinalWeek: [5]SubjectPair{
		{"DIREITO CONSTITUCIONAL", "LÍNGUA PORTUGUESA"},
		{"NOÇÕES DE DIREITO PROCESSUAL CIVIL", "DIREITO ADMINISTRATIVO"},
		{"NOÇÕES DE DIREITO PROCESSUAL PENAL", "RACIOCÍNIO LÓGICO"},
		{"LÍNGUA PORTUGUESA", "DIREITO CONSTITUCIONAL"},
		{"DIREITO ADMINISTRATIVO", "NOÇÕES DE DIREITO PROCESSUAL CIVIL"},
	},

	PrioritySubjects: []string{
		"DIREITO CONSTITUCIONAL",
		"LÍNGUA PORTUGUESA",
		"NOÇÕES DE DIREITO PROCESSUAL CIVIL",
		"NOÇÕES DE DIREITO PROCESSUAL PENAL",
		"DIREITO ADMINISTRATIVO",
	},

	MockDayDescription: "Reserve um momento para descanso",
	MockDayInstruction: "Dica: Fazer um mini simulado - RESPONDER 10 QUESTÕES DE CADA ASSUNTO ESTUDADO DURANTE A SEMANA.",
}
