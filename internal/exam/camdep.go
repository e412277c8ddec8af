package exam

var camDep = &Profile{
	Code:     "cam-dep",
	Name:     "Câmara dos Deputados",
	Strategy: StrategyChunked,

	Topics: map[string][]string{
		"LÍNGUA PORTUGUESA": {
			"Interpretação e compreensão de texto",
			"Organização estrutural dos textos",
			"Coesão, coerência, intertextualidade",
			"Modos de organização discursiva (descrição, narração, exposição, argumentação, injunção)",
			"Tipos textuais",
			"Estrutura da frase: classes de palavras",
			"Morfologia",
			"Sintaxe",
			"Ortografia e acentuação",
			"Pontuação",
			"Uso da crase",
			"Vocabulário: sinônimos, antônimos, neologismos, estrangeirismos",
			"Registro da linguagem",
			"Norma culta",
		},
		"LÍNGUA INGLESA": {
			"Compreensão e interpretação de textos variados",
			"Vocabulário",
			"Estrutura da língua",
			"Ideias explícitas e implícitas",
			"Relações intra- e intertextuais",
			"Gramática relevante para compreensão de textos",
		},
		"DIREITO CONSTITUCIONAL": {
			"Constituição de 1988: estrutura, princípios fundamentais",
			"Poder constituinte",
			"Direitos e garantias fundamentais",
			"Organização do Estado (União, Estados, Municípios, DF)",
			"Deveres, servidores públicos",
			"Estrutura do Poder Legislativo",
			"Competências do Congresso Nacional e das Casas legislativas",
			"Regime constitucional dos parlamentares",
			"Processo legislativo",
			"Fiscalização contábil, financeira e orçamentária",
		},
		"REGIMENTO INTERNO DA CÂMARA DOS DEPUTADOS": {
			"Leitura e aplicação do Regimento da Câmara",
			"Normas regimentais relativas às sessões",
			"Comissões",
			"Tramitação de proposições",
			"Quóruns",
			"Prerrogativas parlamentares",
		},
		"DIREITO ADMINISTRATIVO": {
			"Conceitos e princípios da administração pública",
			"Organização administrativa e entidades paraestatais",
			"Poderes públicos (hierárquico, disciplinar, regulamentar etc.)",
			"Atos administrativos (conceito, requisitos, espécies, extinção, nulidades, revogação)",
			"Agentes públicos",
			"Regime jurídico (Lei 8.112/1990 e regras aplicáveis)",
			"Processo administrativo",
			"Licitações e contratos públicos",
			"Controle da administração",
			"Responsabilidade civil do Estado",
			"Improbidade administrativa",
			"Lei de Acesso à Informação",
			"Lei Geral de Proteção de Dados",
		},
		"RACIOCÍNIO LÓGICO": {
			"Lógica proposicional, conectivos e equivalências lógicas",
			"Quantificadores e predicados",
			"Operações com conjuntos",
			"Tipologias numéricas: inteiros, racionais, reais",
			"Porcentagem, juros",
			"Proporcionalidade direta e inversa",
			"Interpretação de dados em gráficos/tabelas",
			"Dedução de relações lógicas e raciocínio sequencial",
		},
		"INFORMÁTICA E DADOS": {
			"Conceitos básicos de hardware e software",
			"Redes de computadores",
			"Sistema operacional Windows (10 e 11)",
			"Pacote Office / ferramentas de produtividade",
			"Internet/intranet",
			"Segurança da informação",
			"Dados: conceitos, atributos, métricas",
			"Transformação de dados",
			"Governança da informação",
			"Noções de ciência de dados",
		},
		"REGIMENTO COMUM DO CONGRESSO NACIONAL": {
			"Resoluções aplicáveis ao Congresso",
			"Normas regimentais do Congresso",
			"Resolução histórica e atualizações",
			"Artigos/regulações relevantes do Regimento Comum",
		},
		"CIÊNCIA POLÍTICA": {
			"Teoria política",
			"Regimes e formas de governo",
			"Representação política",
			"Partidos políticos",
			"Sistema político brasileiro",
			"Organização política",
			"Sistemas eleitorais",
			"Relações entre poderes",
			"História do Estado",
			"Formação do Estado brasileiro",
		},
		"ADMINISTRAÇÃO GERAL": {
			"Fundamentos e evolução da administração",
			"Organização e métodos organizacionais",
			"Clima e cultura organizacional",
			"Qualidade, eficiência, eficácia, efetividade",
			"Planejamento e gestão de processos e projetos",
			"Liderança, motivação e satisfação no trabalho",
			"Gestão por competências",
			"Comunicação organizacional",
			"Redes organizacionais",
			"Reengenharia organizacional",
			"Sistemas de informação gerenciais",
			"Mudanças organizacionais",
		},
		"ADMINISTRAÇÃO PÚBLICA": {
			"Diferenças entre administração pública e privada",
			"Modelos de administração",
			"Políticas públicas",
			"Ciclo de políticas públicas",
			"Planejamento público (missão, visão, valores, objetivos estratégicos)",
			"Governo eletrônico",
			"Transparência, accountability",
			"Controle social",
			"Gestão de pessoas, recrutamento, avaliação",
			"Princípios da governança pública",
		},
		"ADMINISTRAÇÃO ORÇAMENTÁRIA E FINANCEIRA": {
			"Orçamento público: conceitos, princípios",
			"Plano plurianual, lei de diretrizes orçamentárias, lei orçamentária anual",
			"Processo orçamentário (elaboração, discussão, votação, execução e fiscalização)",
			"Classificações orçamentárias",
			"Receita pública",
			"Despesa",
			"Dívida ativa",
			"Restos a pagar",
			"Regime de adiantamento",
			"Execução financeira",
			"Fiscalização e controle",
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
		{ThroughWeek: 8, Days: map[int]SubjectPair{
			1: {"DIREITO CONSTITUCIONAL", "LÍNGUA PORTUGUESA"},
			2: {"LÍNGUA PORTUGUESA", "DIREITO ADMINISTRATIVO"},
			3: {"ADMINISTRAÇÃO GERAL", "ADMINISTRAÇÃO ORÇAMENTÁRIA E FINANCEIRA"},
			4: {"INFORMÁTICA E DADOS", "ADMINISTRAÇÃO PÚBLICA"},
			5: {"LÍNGUA INGLESA", "RACIOCÍNIO LÓGICO"},
			6: {"CIÊNCIA POLÍTICA", "TREINO DE DISCURSIVA"},
			7: {"REVISAR OS ASSUNTOS ESTUDADOS DURANTE OS ÚLTIMOS 7 DIAS", "REVISAR OS ASSUNTOS ESTUDADOS DURANTE OS ÚLTIMOS 7 DIAS"},
		}},
		{ThroughWeek: 11, Days: map[int]SubjectPair{
			1: {"DIREITO CONSTITUCIONAL", "LÍNGUA PORTUGUESA"},
			2: {"LÍNGUA PORTUGUESA", "DIREITO ADMINISTRATIVO"},
			3: {"ADMINISTRAÇÃO GERAL", "REGIMENTO COMUM DO CONGRESSO NACIONAL"},
			4: {"INFORMÁTICA E DADOS", "ADMINISTRAÇÃO PÚBLICA"},
			5: {"REGIMENTO INTERNO DA CÂMARA DOS DEPUTADOS", "RACIOCÍNIO LÓGICO"},
			6: {"CIÊNCIA POLÍTICA", "TREINO DE DISCURSIVA"},
			7: {"REVISAR OS ASSUNTOS ESTUDADOS DURANTE OS ÚLTIMOS 7 DIAS", "REVISAR OS ASSUNTOS ESTUDADOS DURANTE OS ÚLTIMOS 7 DIAS"},
		}},
		{Days: map[int]SubjectPair{
			1: {"DIREITO CONSTITUCIONAL", "LÍNGUA PORTUGUESA"},
			2: {"LÍNGUA PORTUGUESA", "DIREITO ADMINISTRATIVO"},
			3: {"DIREITO CONSTITUCIONAL", "REGIMENTO INTERNO DA CÂMARA DOS DEPUTADOS"},
			4: {"INFORMÁTICA E DADOS", "ADMINISTRAÇÃO PÚBLICA"},
			5: {"REGIMENTO INTERNO DA CÂMARA DOS DEPUTADOS", "RACIOCÍNIO LÓGICO"},
			6: {"CIÊNCIA POLÍTICA", "TREINO DE DISCURSIVA"},
			7: {"REVISAR OS ASSUNTOS ESTUDADOS DURANTE OS ÚLTIMOS 7 DIAS", "REVISAR OS ASSUNTOS ESTUDADOS DURANTE OS ÚLTIMOS 7 DIAS"},
		}},
	},

	FinalWeek: [5]SubjectPair{
		{"DIREITO CONSTITUCIONAL", "LÍNGUA PORTUGUESA"},
		{"DIREITO ADMINISTRATIVO", "REGIMENTO INTERNO DA CÂMARA DOS DEPUTADOS"},
		{"ADMINISTRAÇÃO GERAL", "RACIOCÍNIO LÓGICO"},
		{"LÍNGUA PORTUGUESA", "DIREITO CONSTITUCIONAL"},
		{"CIÊNCIA POLÍTICA", "INFORMÁTICA E DADOS"},
	},

	PrioritySubjects: []string{
		"DIREITO CONSTITUCIONAL",
		"LÍNGUA PORTUGUESA",
		"DIREITO ADMINISTRATIVO",
		"REGIMENTO INTERNO DA CÂMARA DOS DEPUTADOS",
		"ADMINISTRAÇÃO GERAL",
	},

	MockDayDescription: "Reserve um momento para descanso",
	MockDayInstruction: "Dica: Fazer um mini simulado - RESPONDER 10 QUESTÕES DE CADA ASSUNTO ESTUDADO DURANTE A SEMANA.",
}
