// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import "github.com/tigee1311/sdoh-intake/models"

// opt builds a bilingual option with a persisted code.
func opt(en, es string, code int) models.Option {
	c := code
	return models.Option{TextEN: en, TextES: es, Code: &c}
}

// Shared option sets, reused across many questions. Codes follow the
// source instruments (NHIS/USDA/BRFSS conventions: 7 = prefer not to
// answer, 9 = don't know).
var (
	yn = []models.Option{
		opt("Yes", "Sí", 1),
		opt("No", "No", 2),
	}

	ynDK = []models.Option{
		opt("Yes", "Sí", 1),
		opt("No", "No", 2),
		opt("Don't know", "No sabe", 9),
		opt("Prefer not to answer", "Prefiere no responder", 7),
	}

	freq5 = []models.Option{
		opt("Always", "Siempre", 1),
		opt("Often", "A menudo", 2),
		opt("Sometimes", "A veces", 3),
		opt("Rarely", "Rara vez", 4),
		opt("Never", "Nunca", 5),
	}

	hlConf = []models.Option{
		opt("Extremely", "Extremadamente", 1),
		opt("Quite a bit", "Bastante", 2),
		opt("Somewhat", "Algo", 3),
		opt("A little bit", "Un poco", 4),
		opt("Not at all", "Nada", 5),
	}

	genHealth = []models.Option{
		opt("Excellent", "Excelente", 1),
		opt("Very good", "Muy buena", 2),
		opt("Good", "Buena", 3),
		opt("Fair", "Regular", 4),
		opt("Poor", "Mala", 5),
	}

	english = []models.Option{
		opt("Very well", "Muy bien", 1),
		opt("Well", "Bien", 2),
		opt("Not well", "No muy bien", 3),
		opt("Not at all", "Nada", 4),
	}

	income = []models.Option{
		opt("< $10,000", "< $10,000", 1),
		opt("$10,000–$24,999", "$10,000–$24,999", 2),
		opt("$25,000–$34,999", "$25,000–$34,999", 3),
		opt("$35,000–$49,999", "$35,000–$49,999", 4),
		opt("$50,000–$74,999", "$50,000–$74,999", 5),
		opt("$75,000–$99,999", "$75,000–$99,999", 6),
		opt("$100,000–$149,999", "$100,000–$149,999", 7),
		opt("$150,000–$199,999", "$150,000–$199,999", 8),
		opt("$200,000 or more", "$200,000 o más", 9),
		opt("Prefer not to answer", "Prefiere no responder", 10),
	}

	education = []models.Option{
		opt("Less than high school", "Menos que secundaria", 1),
		opt("High school or GED", "Secundaria o GED", 2),
		opt("Some college, no degree", "Algo de universidad, sin título", 3),
		opt("Associate degree", "Técnico/Asociado", 4),
		opt("Bachelor’s degree", "Licenciatura", 5),
		opt("Master’s degree", "Maestría", 6),
		opt("Professional/Doctoral degree", "Profesional/Doctorado", 7),
	}

	employment = []models.Option{
		opt("Working now", "Trabajando actualmente", 1),
		opt("Temporary leave", "Permiso temporal", 2),
		opt("Looking for work / Unemployed", "Buscando trabajo / Desempleado(a)", 3),
		opt("Retired", "Jubilado(a)", 4),
		opt("Disabled", "Con discapacidad", 5),
		opt("Keeping house", "Labores del hogar", 6),
		opt("Student", "Estudiante", 7),
		opt("Other", "Otro", 8),
	}

	marital = []models.Option{
		opt("Married", "Casado(a)", 1),
		opt("Divorced", "Divorciado(a)", 2),
		opt("Widowed", "Viudo(a)", 3),
		opt("Separated", "Separado(a)", 4),
		opt("Never married", "Nunca casado(a)", 5),
		opt("Member of an unmarried couple", "Pareja no casada", 6),
	}

	orientation = []models.Option{
		opt("Gay", "Gay", 1),
		opt("Lesbian", "Lesbiana", 2),
		opt("Straight (not gay/lesbian)", "Heterosexual (no gay/lesbiana)", 3),
		opt("Bisexual", "Bisexual", 4),
		opt("None of these — show more options", "Ninguna de estas — ver más opciones", 5),
	}

	orientationMore = []models.Option{
		opt("Queer", "Queer", 1),
		opt("Poly/omni/sapio/pansexual", "Poli/omni/sapio/pansexual", 2),
		opt("Asexual", "Asexual", 3),
		opt("Two-spirit", "Dos espíritus", 4),
		opt("Figuring it out", "En proceso de definir", 5),
		opt("Mostly straight", "Mayormente heterosexual", 6),
		opt("No sexuality", "No se considera con sexualidad", 7),
		opt("No labels", "No usa etiquetas", 8),
		opt("Don't know", "No sabe", 9),
		opt("Something else (specify)", "Otra cosa (especifique)", 10),
		opt("Prefer not to answer", "Prefiere no responder", 11),
	}

	// USDA six-item food security module
	fsOSN = []models.Option{
		opt("Often true", "A menudo cierto", 1),
		opt("Sometimes true", "A veces cierto", 2),
		opt("Never true", "Nunca cierto", 3),
	}

	fsYN = []models.Option{
		opt("Yes", "Sí", 1),
		opt("No", "No", 2),
	}

	fs3aFreq = []models.Option{
		opt("Almost every month", "Casi todos los meses", 1),
		opt("Some months but not every month", "Algunos meses pero no todos", 2),
		opt("Only 1 or 2 months", "Solo 1 o 2 meses", 3),
	}

	agree5 = []models.Option{
		opt("Strongly agree", "Totalmente de acuerdo", 1),
		opt("Agree", "De acuerdo", 2),
		opt("Neutral", "Neutral", 3),
		opt("Disagree", "En desacuerdo", 4),
		opt("Strongly disagree", "Totalmente en desacuerdo", 5),
	}

	everydayDisc = []models.Option{
		opt("Almost every day", "Casi todos los días", 1),
		opt("At least once a week", "Al menos una vez por semana", 2),
		opt("A few times a month", "Unas cuantas veces al mes", 3),
		opt("A few times a year", "Unas cuantas veces al año", 4),
		opt("Less than once a year", "Menos de una vez al año", 5),
		opt("Never", "Nunca", 6),
	}

	coverage = []models.Option{
		opt("Covered", "Con cobertura", 1),
		opt("Not covered", "Sin cobertura", 2),
		opt("Not sure", "No seguro(a)", 3),
	}

	selectSkip = []models.Option{
		opt("Select", "Seleccionar", 1),
		opt("Skip", "Omitir", 0),
	}
)
