package exam

var tjRJ = &Profile{
	Code:     "tj-rj",
	Name:     "TJ RJ",
	Strategy: StrategyWeighted,

	Topics: map[string][]string{
		"LÍNGUA PORTUGUESA": {
			"Reconhecimento de tipos e gêneros textuais",
			"Compreensão e interpretação de textos de gêneros variados",
			"Domínio da ortografia oficial",
			"Domínio dos mecanismos de coesão textual",
			"Domínio da estrutura morfossintática do período",
			"Emprego dos sinais de pontuação",
			"Concordância verbal e nominal",
			"Reescritura de frases e parágrafos do texto",
			"Colocação dos pronomes átonos",
			"Emprego do sinal indicativo de crase",
		},
		"DIREITO CONSTITUCIONAL": {
			"Constituição da República Federativa do Brasil de 1988, Princípios fundamentais",
			"Direitos e garantias fundamentais",
			"Organização político-administrativa",
			"Administração pública",
			"Poder Legislativo",
			"Poder Executivo",
			"Poder Judiciário",
			"Funções essenciais à justiça",
		},
		"DIREITO ADMINISTRATIVO": {
			"Noções de organização administrativa",
			"Administração direta e indireta, centralizada e descentralizada",
			"Ato administrativo",
			"Processo administrativo",
			"Agentes públicos",
			"Poderes administrativos",
			"Nova lei de licitações",
			"Controle e responsabilização da administração",
		},
		"DIREITO PROCESSUAL CIVIL": {
			"Princípios do processo",
			"Jurisdição",
			"Ação",
			"Competência",
			"Da Cooperação internacional",
			"Competência (disposições gerais, modificação, incompetência)",
			"Ação (condições e classificação)",
			"Pressupostos processuais",
			"Preclusão",
			"Sujeitos do processo",
			"Intervenção de terceiros",
			"Do Juiz e dos Auxiliares da Justiça",
			"Ministério Público, Advocacia Pública e Defensoria Pública",
			"Atos processuais",
			"Tutela provisória",
			"Formação, suspensão e extinção de processo",
			"Processo de conhecimento e do cumprimento da sentença",
			"Dos recursos",
			"Controle judicial dos atos administrativos",
		},
		"ÉTICA NO SERVIÇO PÚBLICO": {
			"Ética e moral",
			"Ética, princípios e valores",
			"Ética e democracia: exercício da cidadania",
			"Ética e função pública",
			"Lei nº 8.429/1992 e suas alterações",
			"Lei nº 12.846/2013 e suas alterações",
		},
		"LEGISLAÇÃO ESPECIAL": {
			"Lei Estadual nº 6.956/2015",
			"Decreto-Lei nº 220/1975 e suas alterações",
			"Decreto nº 2.479/1979 e suas alterações",
			"Lei Estadual nº 4.620/2005 e suas alterações",
			"Consolidação Normativa da Corregedoria Geral da Justiça, parte judicial: Livro I – Parte Geral",
			"Regimento Interno do TJRJ",
			"Resolução Órgão Especial nº 03/2021",
		},
		"DIREITO PROCESSUAL PENAL": {
			"Disposições preliminares do Código de Processo Penal",
			"Inquérito policial",
			"Ação penal",
			"Do juiz, do ministério público, do acusado e defensor, dos assistentes e auxiliares da justiça, dos peritos e intérpretes",
			"Das citações e intimações, Da sentença",
			"Do processo comum",
			"Do processo comum",
			"Do processo comum",
			"Do processo comum",
			"Prisão e liberdade provisória",
			"Processo e julgamento dos crimes de responsabilidade do funcionários públicos",
			"habeas corpus e seu processo",
			"Disposições constitucionais aplicáveis ao direito processual penal",
		},
		"DIREITOS DAS PESSOAS COM DEFICIÊNCIA": {
			"Inclusão, direitos e garantias legais e constitucionais das pessoas com deficiência (Lei nº 13.146/2015)",
			"Normas gerais e critérios básicos para a promoção da acessibilidade das pessoas com deficiência ou com mobilidade reduzida (Lei nº 10.098/2000)",
			"Prioridade de atendimento às pessoas com deficiência (Lei nº10.048/2000)",
		},
		"LEGISLAÇÃO": {
			"Código de Normas da Corregedoria Geral da Justiça do Estado do Rio de Janeiro, Parte Geral (disposições gerais, serviços judiciais, cartórios)",
			"Código de Normas da Corregedoria Geral da Justiça do Estado do Rio de Janeiro, Foro Judicial",
			"Código de Normas da Corregedoria Geral da Justiça do Estado do Rio de Janeiro, Foro Judicial",
			"Código de Normas da Corregedoria Geral da Justiça do Estado do Rio de Janeiro, Das Centrais de Audiência de Custódia",
			"Lei Federal nº 9.099/1995 e suas alterações",
			"Lei Federal nº 12.153/2009 (Juizados da Fazenda Pública)",
		},
	},

	RepeatedTopics: map[string][]string{
		"LÍNGUA PORTUGUESA": {
			"Domínio da ortografia oficial",
			"Domínio dos mecanismos de coesão textual",
		},
		"DIREITO CONSTITUCIONAL": {
			"Constituição da República Federativa do Brasil de 1988, Princípios fundamentais",
			"Direitos e garantias fundamentais",
		},
		"DIREITO ADMINISTRATIVO": {
			"Ato administrativo",
			"Processo administrativo",
			"Poderes administrativos",
		},
		"DIREITO PROCESSUAL CIVIL": {
			"Competência",
			"Ação",
			"Atos processuais",
		},
		"DIREITO PROCESSUAL PENAL": {
			"Inquérito policial",
			"Ação penal",
		},
		"ÉTICA NO SERVIÇO PÚBLICO": {
			"Ética e moral",
			"Ética e função pública",
		},
		"LEGISLAÇÃO ESPECIAL": {
			"Lei Estadual nº 6.956/2015",
			"Decreto-Lei nº 220/1975 e suas alterações",
			"Decreto nº 2.479/1979 e suas alterações",
		},
		"LEGISLAÇÃO": {
			"Código de Normas da Corregedoria Geral da Justiça do Estado do Rio de Janeiro, Parte Geral (disposições gerais, serviços judiciais, cartórios)",
			"Regimento Interno do TJRJ",
		},
		"DIREITOS DAS PESSOAS COM DEFICIÊNCIA": {
			"Inclusão, direitos e garantias legais e constitucionais das pessoas com deficiência (Lei nº 13.146/2015)",
			"Normas gerais e critérios básicos para a promoção da acessibilidade das pessoas com deficiência ou com mobilidade reduzida (Lei nº 10.098/2000)",
		},
	},

	Phases: []PatternPhase{
		{ThroughWeek: 7, Days: map[int]SubjectPair{
			1: {"DIREITO CONSTITUCIONAL", "LÍNGUA PORTUGUESA"},
			2: {"LÍNGUA PORTUGUESA", "DIREITO ADMINISTRATIVO"},
			3: {"ÉTICA NO SERVIÇO PÚBLICO", "DIREITO PROCESSUAL CIVIL"},
			4: {"DIREITO PROCESSUAL CIVIL", "LEGISLAÇÃO ESPECIAL"},
			5: {"LEGISLAÇÃO ESPECIAL", "DIREITO PROCESSUAL PENAL"},
			6: {"DIREITOS DAS PESSOAS COM DEFICIÊNCIA", "TREINO DE DISCURSIVA"},
			7: {"REVISAR OS ASSUNTOS ESTUDADOS DURANTE A SEMANA", "REVISAR OS ASSUNTOS ESTUDADOS DURANTE A SEMANA"},
		}},
		{ThroughWeek: 11, Days: map[int]SubjectPair{
			1: {"DIREITO CONSTITUCIONAL", "LÍNGUA PORTUGUESA"},
			2: {"LÍNGUA PORTUGUESA", "DIREITO ADMINISTRATIVO"},
			3: {"ÉTICA NO SERVIÇO PÚBLICO", "DIREITO PROCESSUAL CIVIL"},
			4: {"DIREITO PROCESSUAL CIVIL", "LEGISLAÇÃO ESPECIAL"},
			5: {"LEGISLAÇÃO ESPECIAL", "DIREITO PROCESSUAL PENAL"},
			6: {"LEGISLAÇÃO ESPECIAL", "TREINO DE DISCURSIVA"},
			7: {"REVISAR OS ASSUNTOS ESTUDADOS DURANTE A SEMANA", "REVISAR OS ASSUNTOS ESTUDADOS DURANTE A SEMANA"},
		}},
		{ThroughWeek: 12, Days: map[int]SubjectPair{
			1: {"DIREITO CONSTITUCIONAL", "LEGISLAÇÃO"},
			2: {"LEGISLAÇÃO", "DIREITO ADMINISTRATIVO"},
			3: {"LEGISLAÇÃO", "DIREITO PROCESSUAL CIVIL"},
			4: {"DIREITO PROCESSUAL CIVIL", "LEGISLAÇÃO ESPECIAL"},
			5: {"LEGISLAÇÃO ESPECIAL", "DIREITO PROCESSUAL PENAL"},
			6: {"LEGISLAÇÃO ESPECIAL", "TREINO DE DISCURSIVA"},
			7: {"REVISAR OS ASSUNTOS ESTUDADOS DURANTE A SEMANA", "REVISAR OS ASSUNTOS ESTUDADOS DURANTE A SEMANA"},
		}},
		{Days: map[int]SubjectPair{
			1: {"DIREITO CONSTITUCIONAL", "LEGISLAÇÃO"},
			2: {"LEGISLAÇÃO", "DIREITO ADMINISTRATIVO"},
			3: {"ÉTICA NO SERVIÇO PÚBLICO", "DIREITO PROCESSUAL CIVIL"},
			4: {"DIREITO PROCESSUAL CIVIL", "LEGISLAÇÃO"},
			5: {"LEGISLAÇÃO ESPECIAL", "DIREITO PROCESSUAL PENAL"},
			6: {"LEGISLAÇÃO ESPECIAL", "TREINO DE DISCURSIVA"},
			7: {"REVISAR OS ASSUNTOS ESTUDADOS DURANTE A SEMANA", "REVISAR OS ASSUNTOS ESTUDADOS DURANTE A SEMANA"},
		}},
	},

	FinalWeek: [5]SubjectPair{
		{"DIREITO CONSTITUCIONAL", "LÍNGUA PORTUGUESA"},
		{"DIREITO ADMINISTRATIVO", "DIREITO PROCESSUAL CIVIL"},
		{"DIREITO PROCESSUAL PENAL", "ÉTICA NO SERVIÇO PÚBLICO"},
		{"LEGISLAÇÃO", "LEGISLAÇÃO ESPECIAL"},
		{"DIREITOS DAS PESSOAS COM DEFICIÊNCIA", "DIREITO CONSTITUCIONAL"},
	},

	PrioritySubjects: []string{
		"DIREITO CONSTITUCIONAL",
		"LÍNGUA PORTUGUESA",
		"DIREITO ADMINISTRATIVO",
		"DIREITO PROCESSUAL CIVIL",
		"DIREITO PROCESSUAL PENAL",
	},

	MockDayDescription: "FAZER UM MINI SIMULADO",
	MockDayInstruction: "DICA - FAZER UM MINI SIMULADO dos assuntos estudados durante a semana.",
}
