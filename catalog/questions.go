// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import "github.com/tigee1311/sdoh-intake/models"

// builder registers questions in display order and keeps the first error.
type builder struct {
	r   *Registry
	err error
}

func (b *builder) add(q models.Question) {
	if b.err != nil {
		return
	}
	b.err = b.r.Register(q)
}

func (b *builder) choice(section, id, en, es string, options []models.Option, visible ...models.Condition) {
	q := models.Question{ID: id, Section: section, TextEN: en, TextES: es, Type: models.TypeChoice, Options: options}
	if len(visible) > 0 {
		q.Visible = visible[0]
	}
	b.add(q)
}

func (b *builder) integer(section, id, en, es string, visible ...models.Condition) {
	q := models.Question{ID: id, Section: section, TextEN: en, TextES: es, Type: models.TypeInteger}
	if len(visible) > 0 {
		q.Visible = visible[0]
	}
	b.add(q)
}

func (b *builder) text(section, id, en, es string, visible ...models.Condition) {
	q := models.Question{ID: id, Section: section, TextEN: en, TextES: es, Type: models.TypeFreeText}
	if len(visible) > 0 {
		q.Visible = visible[0]
	}
	b.add(q)
}

// registerAll fills the registry with the complete bilingual instrument.
// Question IDs are stable join keys for persisted data and must never be
// reused for a different question, even as text and ordering evolve.
func registerAll(r *Registry) error {
	b := &builder{r: r}

	// Access to Health Services
	b.choice("Access to Health Services", "q1_last_visit_any",
		"How long has it been since you last saw a doctor or other health professional about your health?",
		"¿Cuánto tiempo ha pasado desde la última vez que vio a un médico u otro profesional de la salud por su salud?",
		[]models.Option{
			opt("Within the past year (<12 months)", "Dentro del último año (<12 meses)", 1),
			opt("Within the last 2 years", "En los últimos 2 años", 2),
			opt("Within the last 3 years", "En los últimos 3 años", 3),
			opt("Within the last 5 years", "En los últimos 5 años", 4),
			opt("Within the last 10 years", "En los últimos 10 años", 5),
			opt("10 years ago or more", "Hace 10 años o más", 6),
			opt("Never", "Nunca", 0),
			opt("Prefer not to answer", "Prefiere no responder", 7),
			opt("Don't know", "No sabe", 9),
		})
	b.choice("Access to Health Services", "q2_last_visit_wellness",
		"Was that visit a wellness/physical/general check-up?",
		"¿Esa visita fue un examen de bienestar/físico/revisión general?",
		ynDK,
		models.CodeIn("q1_last_visit_any", 1, 2, 3, 4, 5, 6))
	b.choice("Access to Health Services", "q3_last_wellness",
		"How long has it been since your last wellness/physical/general check-up?",
		"¿Cuánto tiempo ha pasado desde su último examen de bienestar/físico/revisión general?",
		[]models.Option{
			opt("Within the past year", "Dentro del último año", 1),
			opt("Within the last 2 years", "En los últimos 2 años", 2),
			opt("Within the last 3 years", "En los últimos 3 años", 3),
			opt("Within the last 5 years", "En los últimos 5 años", 4),
			opt("More than 5 years", "Más de 5 años", 5),
			opt("Prefer not to answer", "Prefiere no responder", 7),
			opt("Don't know", "No sabe", 9),
		},
		models.AllOf(
			models.CodeIn("q1_last_visit_any", 1, 2, 3, 4, 5, 6),
			models.AnsweredNot("q2_last_visit_wellness", 1),
		))
	b.choice("Access to Health Services", "q4_usual_source",
		"Is there a place you USUALLY go if you're sick and need care?",
		"¿Tiene un lugar al que USUALMENTE va cuando está enfermo y necesita atención?",
		[]models.Option{
			opt("Yes", "Sí", 1),
			opt("There is NO place", "NO hay lugar", 2),
			opt("There is MORE THAN ONE place", "Hay MÁS DE UN lugar", 3),
			opt("Prefer not to answer", "Prefiere no responder", 7),
			opt("Don't know", "No sabe", 9),
		})
	b.choice("Access to Health Services", "q5_usual_place_type",
		"What kind of place is it/do you go to most often?",
		"¿Qué tipo de lugar es o al que va con más frecuencia?",
		[]models.Option{
			opt("Doctor's office / health center", "Consultorio / centro de salud", 1),
			opt("Walk-in / urgent care / retail clinic", "Clínica sin cita / urgencias / minorista", 2),
			opt("Emergency room", "Sala de emergencias", 3),
			opt("VA Medical Center / VA clinic", "Centro médico/Clínica de VA", 4),
			opt("Some other place", "Otro lugar", 5),
			opt("Does not go to one place most often", "No va a un solo lugar con más frecuencia", 6),
			opt("Prefer not to answer", "Prefiere no responder", 7),
			opt("Don't know", "No sabe", 9),
		},
		models.CodeIn("q4_usual_source", 1, 3))
	b.integer("Access to Health Services", "q6_urgent_care_visits",
		"In the past 12 months, how many times did you go to urgent care or a retail clinic? (0–96; 96 = 96+)",
		"En los últimos 12 meses, ¿cuántas veces fue a urgencias o a una clínica minorista? (0–96; 96 = 96+)")
	b.integer("Access to Health Services", "q7_er_visits",
		"In the past 12 months, how many times did you go to a hospital emergency room? (0–96; 96 = 96+)",
		"En los últimos 12 meses, ¿cuántas veces fue a la sala de emergencias de un hospital? (0–96; 96 = 96+)")
	b.choice("Access to Health Services", "q8_hospitalized_overnight",
		"In the past 12 months, were you hospitalized overnight?",
		"En los últimos 12 meses, ¿estuvo hospitalizado durante la noche?",
		ynDK)
	b.choice("Access to Health Services", "q9_delayed_care_cost",
		"In the past 12 months, did you DELAY medical care because of cost?",
		"En los últimos 12 meses, ¿RETRASÓ la atención médica por el costo?",
		ynDK)
	b.choice("Access to Health Services", "q10_unmet_need_cost",
		"In the past 12 months, was there a time you NEEDED care but DID NOT GET IT because of cost?",
		"En los últimos 12 meses, ¿hubo alguna vez que NECESITÓ atención pero NO LA RECIBIÓ por el costo?",
		ynDK)

	// Income
	b.choice("Income", "income_bracket",
		"What is your annual household income from all sources?",
		"¿Cuál es el ingreso anual total de su hogar (todas las fuentes)?",
		income)
	b.integer("Income", "num_supported",
		"How many people (including you) were supported by that income?",
		"¿Cuántas personas (incluyéndose) se mantuvieron con ese ingreso?")

	// Birthplace
	b.choice("Birthplace", "bp_where",
		"Where were you born?",
		"¿Dónde nació?",
		[]models.Option{
			opt("In the United States", "En los Estados Unidos", 1),
			opt("Outside the United States", "Fuera de los Estados Unidos", 2),
		})
	b.text("Birthplace", "bp_state",
		"If in the U.S., which state?",
		"Si fue en EE. UU., ¿en qué estado?",
		models.CodeIn("bp_where", 1))
	b.text("Birthplace", "bp_country",
		"If outside the U.S., which territory or country?",
		"Si fue fuera de EE. UU., ¿qué territorio o país?",
		models.CodeIn("bp_where", 2))

	// Address
	b.text("Address", "addr_street",
		"Street address (number and street) [optional]",
		"Dirección (número y calle) [opcional]")
	b.text("Address", "addr_city", "City", "Ciudad")
	b.text("Address", "addr_state", "State/Province", "Estado/Provincia")
	b.text("Address", "addr_zip", "ZIP/Postal code", "Código postal")

	// Age
	b.text("Age", "dob_mm", "Birth month (MM)", "Mes de nacimiento (MM)")
	b.text("Age", "dob_dd", "Birth day (DD)", "Día de nacimiento (DD)")
	b.text("Age", "dob_yy", "Birth year (YYYY)", "Año de nacimiento (AAAA)")
	b.integer("Age", "age_years", "Age (in years)", "Edad (en años)")

	// Employment / Marital / Education / English
	b.choice("Employment", "emp_status", "Current employment status", "Situación laboral actual", employment)
	b.text("Employment", "emp_other",
		"If 'Other', please specify", "Si seleccionó 'Otro', especifique",
		models.CodeIn("emp_status", 8))
	b.choice("Marital Status", "marital", "Marital status", "Estado civil", marital)
	b.choice("Education", "education", "Highest level of education completed", "Máximo nivel educativo completado", education)
	b.choice("English Proficiency", "english_proficiency", "How well do you speak English?", "¿Qué tan bien habla inglés?", english)

	// Ethnicity & Race
	b.choice("Ethnicity & Race", "hispanic_origin",
		"Are you of Hispanic/Latino/Spanish origin?", "¿Es de origen hispano/latino/español?",
		[]models.Option{
			opt("No, not of Hispanic/Latino/Spanish origin", "No, no de origen hispano/latino/español", 1),
			opt("Yes, Mexican/Mexican Am./Chicano", "Sí, mexicano/mexicoamericano/chicano", 2),
			opt("Yes, Puerto Rican", "Sí, puertorriqueño", 3),
			opt("Yes, Cuban", "Sí, cubano", 4),
			opt("Yes, another Hispanic/Latino/Spanish origin (specify)", "Sí, otro origen hispano/latino/español (especifique)", 5),
		})
	b.text("Ethnicity & Race", "hispanic_origin_detail",
		"Please specify your Hispanic/Latino/Spanish origin", "Especifique su origen hispano/latino/español",
		models.CodeIn("hispanic_origin", 5))

	raceItems := []struct {
		id, en, es string
		detail     bool
	}{
		{"race_white", "White (specify origins if you wish)", "Blanco (especifique orígenes si desea)", true},
		{"race_black", "Black or African American (specify origins if you wish)", "Negro o afroamericano (especifique orígenes si desea)", true},
		{"race_aian", "American Indian or Alaska Native (specify tribe)", "Indígena americano o nativo de Alaska (especifique tribu)", true},
		{"race_chinese", "Chinese", "Chino", false},
		{"race_filipino", "Filipino", "Filipino", false},
		{"race_asianind", "Asian Indian", "Indio asiático", false},
		{"race_viet", "Vietnamese", "Vietnamita", false},
		{"race_korean", "Korean", "Coreano", false},
		{"race_japanese", "Japanese", "Japonés", false},
		{"race_other_asian", "Other Asian (specify)", "Otro asiático (especifique)", true},
		{"race_nh", "Native Hawaiian", "Nativo hawaiano", false},
		{"race_samoan", "Samoan", "Samoano", false},
		{"race_chamorro", "Chamorro", "Chamorro", false},
		{"race_other_pi", "Other Pacific Islander (specify)", "Otro isleño del Pacífico (especifique)", true},
		{"race_other", "Some other race (specify)", "Otra raza (especifique)", true},
	}
	for _, item := range raceItems {
		b.choice("Ethnicity & Race", item.id, "Race — "+item.en, "Raza — "+item.es, selectSkip)
		if item.detail {
			b.text("Ethnicity & Race", item.id+"_detail",
				"Please specify", "Especifique",
				models.CodeIn(item.id, 1))
		}
	}

	// Food Insecurity (USDA six-item module)
	b.choice("Food Insecurity", "fs1",
		"“The food we bought just didn’t last, and we didn’t have money to get more.”",
		"“La comida que compramos no alcanzó, y no teníamos dinero para comprar más.”",
		fsOSN)
	b.choice("Food Insecurity", "fs2",
		"“We couldn’t afford to eat balanced meals.”",
		"“No podíamos permitirnos comer comidas balanceadas.”",
		fsOSN)
	b.choice("Food Insecurity", "fs3",
		"In the past 12 months, did you cut meal size or skip meals due to lack of money?",
		"En los últimos 12 meses, ¿recortó el tamaño de las comidas o se saltó comidas por falta de dinero?",
		fsYN)
	b.choice("Food Insecurity", "fs3a",
		"If yes, how often?", "Si respondió sí, ¿con qué frecuencia?",
		fs3aFreq,
		models.CodeIn("fs3", 1))
	b.choice("Food Insecurity", "fs4",
		"In the past 12 months, did you eat less than you felt you should due to lack of money?",
		"En los últimos 12 meses, ¿comió menos de lo que debía por falta de dinero?",
		fsYN)
	b.choice("Food Insecurity", "fs5",
		"In the past 12 months, were you ever hungry but didn’t eat because there wasn’t enough money for food?",
		"En los últimos 12 meses, ¿tuvo hambre pero no comió por falta de dinero?",
		fsYN)

	// Health Insurance
	insItems := []struct{ id, en, es string }{
		{"ins_employer", "Employer/union plan (yours/family; includes COBRA)", "Plan de empleador/sindicato (suyo/familia; incluye COBRA)"},
		{"ins_direct", "Direct purchase / Marketplace or exchange", "Compra directa / Mercado o intercambio"},
		{"ins_medicare", "Medicare", "Medicare"},
		{"ins_medicaid", "Medicaid / Medical Assistance / CHIP", "Medicaid / Asistencia médica / CHIP"},
		{"ins_tricare", "TRICARE / VA", "TRICARE / VA"},
		{"ins_ihs", "Indian Health Service", "Servicio de Salud Indígena"},
		{"ins_other", "Other health coverage", "Otro tipo de cobertura de salud"},
	}
	for _, item := range insItems {
		b.choice("Health Insurance", item.id, item.en, item.es, coverage)
	}
	b.text("Health Insurance", "ins_other_detail",
		"If 'Other' is covered, what type?",
		"Si 'Otro' tiene cobertura, ¿qué tipo?",
		models.CodeIn("ins_other", 1))

	// Health Literacy
	b.choice("Health Literacy", "hl_conf",
		"How confident are you filling out medical forms by yourself?",
		"¿Qué tan seguro(a) se siente al llenar formularios médicos por su cuenta?",
		hlConf)
	b.choice("Health Literacy", "hl_help_read",
		"How often do you have someone help you read health materials?",
		"¿Con qué frecuencia alguien le ayuda a leer materiales de salud?",
		freq5)
	b.choice("Health Literacy", "hl_learn_prob",
		"How often do you have problems learning about your medical condition due to written information?",
		"¿Con qué frecuencia tiene problemas para aprender sobre su condición por la información escrita?",
		freq5)

	// General Health & Sexual Orientation
	b.choice("General Health", "gen_health",
		"Overall, how would you rate your health?",
		"En general, ¿cómo califica su salud?",
		genHealth)
	b.choice("Sexual Orientation", "so1",
		"Which best represents how you think of yourself?",
		"¿Cuál lo(a) representa mejor?",
		orientation)
	b.choice("Sexual Orientation", "so2",
		"Additional options (if selected)",
		"Opciones adicionales (si seleccionó)",
		orientationMore,
		models.CodeIn("so1", 5))
	b.text("Sexual Orientation", "so2_detail",
		"Please describe", "Describa",
		models.CodeIn("so2", 10))

	// Discrimination (Major)
	majorItems := []struct{ id, en, es string }{
		{"disc_fired", "Unfairly fired from a job?", "¿Despedido injustamente de un trabajo?"},
		{"disc_not_hired", "Not hired for a job for unfair reasons?", "¿No contratado por razones injustas?"},
		{"disc_denied_promo", "Denied a promotion?", "¿Negada una promoción?"},
		{"disc_police", "Stopped/searched/threatened/abused by police?", "¿Detenido/registrado/amenazado/abusado por la policía?"},
		{"disc_housing_blocked", "Prevented from moving into a neighborhood?", "¿Impedido de mudarse a un vecindario?"},
		{"disc_neighbors_hostile", "Neighbors made life difficult after moving in?", "¿Vecinos le hicieron la vida difícil tras mudarse?"},
		{"disc_bank_loan", "Denied a bank loan?", "¿Negado un préstamo bancario?"},
		{"disc_school_discouraged", "Discouraged from continuing education?", "¿Disuadido de continuar su educación?"},
		{"disc_healthcare", "Denied/poorer healthcare than others?", "¿Atención médica negada o de peor calidad que otros?"},
	}
	for _, item := range majorItems {
		b.choice("Discrimination (Major)", item.id, item.en, item.es, yn)
	}

	// Discrimination (Everyday)
	edsItems := []struct{ id, en, es string }{
		{"eds_courtesy", "Treated with less courtesy than other people", "Trato con menos cortesía que otras personas"},
		{"eds_respect", "Treated with less respect than other people", "Trato con menos respeto que otras personas"},
		{"eds_service", "Received poorer service at restaurants or stores", "Servicio peor en restaurantes o tiendas"},
		{"eds_not_smart", "People act as if you are not smart", "La gente actúa como si no fuera inteligente"},
		{"eds_afraid", "People act as if they are afraid of you", "La gente actúa como si le tuviera miedo"},
		{"eds_dishonest", "People act as if you are dishonest", "La gente actúa como si fuera deshonesto"},
		{"eds_not_as_good", "People act as if you are not as good as they are", "La gente actúa como si no fuera tan bueno como ellos"},
		{"eds_insulted", "You are called names or insulted", "Le ponen apodos o insultan"},
		{"eds_threatened", "You are threatened or harassed", "Le amenazan o acosan"},
	}
	for _, item := range edsItems {
		b.choice("Discrimination (Everyday)", item.id, item.en, item.es, everydayDisc)
	}

	// Neighborhood
	nbhItems := []struct{ id, en, es string }{
		{"nbh_safe_walk", "I feel safe walking in my neighborhood, day or night.", "Me siento seguro caminando en mi vecindario, de día o de noche."},
		{"nbh_violence", "Violence is not a problem in my neighborhood.", "La violencia no es un problema en mi vecindario."},
		{"nbh_safe_crime", "My neighborhood is safe from crime.", "Mi vecindario está a salvo del crimen."},
		{"nbh_active", "I see people being active (walking, biking) in my neighborhood.", "Veo gente activa (caminando, en bici) en mi vecindario."},
		{"nbh_sidewalks", "There are sidewalks on most streets.", "Hay aceras en la mayoría de las calles."},
		{"nbh_stores", "There are stores within walking distance.", "Hay tiendas a distancia a pie."},
		{"nbh_parks", "There are parks or open spaces nearby.", "Hay parques o espacios abiertos cerca."},
	}
	for _, item := range nbhItems {
		b.choice("Neighborhood", item.id, item.en, item.es, agree5)
	}

	// Housing
	b.choice("Housing", "house_bills",
		"In the last 12 months, were you unable to pay mortgage/rent or utilities on time?",
		"En los últimos 12 meses, ¿no pudo pagar a tiempo la hipoteca/renta o los servicios?",
		yn)
	b.integer("Housing", "house_moves",
		"How many times did you move in the past 12 months?",
		"¿Cuántas veces se mudó en los últimos 12 meses?")
	b.choice("Housing", "house_homeless",
		"In the past 12 months, were you ever homeless (no stable place to live)?",
		"En los últimos 12 meses, ¿estuvo sin hogar (sin lugar estable para vivir)?",
		yn)
	b.text("Housing", "house_sleep_place",
		"If homeless, where did you sleep most often (shelter, street, car, doubled up, etc.)?",
		"Si estuvo sin hogar, ¿dónde durmió con más frecuencia (albergue, calle, auto, con conocidos, etc.)?",
		models.CodeIn("house_homeless", 1))
	b.integer("Housing", "house_forced_move",
		"In the last 12 months, how many times were you forced to move by a landlord, bank, or mortgage company?",
		"En los últimos 12 meses, ¿cuántas veces fue obligado a mudarse por el propietario, banco o hipotecaria?")

	// Transportation
	b.choice("Transportation", "trans_barrier",
		"In the past 12 months, did lack of transportation keep you from appointments/work/essentials?",
		"En los últimos 12 meses, ¿la falta de transporte le impidió asistir a citas/trabajo/esenciales?",
		yn)
	b.choice("Transportation", "trans_car_access",
		"How often do you have access to a car when needed?",
		"¿Con qué frecuencia tiene acceso a un auto cuando lo necesita?",
		freq5)
	b.choice("Transportation", "trans_public_use",
		"How often do you use public transportation?",
		"¿Con qué frecuencia usa transporte público?",
		freq5)
	b.choice("Transportation", "trans_public_reliable",
		"How reliable is public transportation in your area?",
		"¿Qué tan confiable es el transporte público en su zona?",
		yn)
	b.integer("Transportation", "trans_time_provider",
		"How much time does it usually take to reach your healthcare provider?",
		"¿Cuánto tiempo suele tardar en llegar a su proveedor de salud?")
	b.integer("Transportation", "trans_cost_month",
		"How much does transportation cost you per month (estimate)?",
		"¿Cuánto gasta en transporte por mes (estimado)?")
	b.choice("Transportation", "trans_rely_others",
		"Do you rely on family/friends for rides?",
		"¿Depende de familia/amigos para traslados?",
		yn)
	b.choice("Transportation", "trans_missed_essentials",
		"Have you missed meds/food/essentials due to transport barriers?",
		"¿Ha dejado de obtener medicinas/comida/esenciales por barreras de transporte?",
		yn)

	// Financial Strain
	b.choice("Financial Strain", "fin_bills_diff",
		"How difficult is it for you to pay monthly bills?",
		"¿Qué tan difícil es pagar sus cuentas mensuales?",
		[]models.Option{
			opt("Very difficult", "Muy difícil", 1),
			opt("Somewhat difficult", "Algo difícil", 2),
			opt("Not difficult", "No es difícil", 3),
		})
	b.choice("Financial Strain", "fin_end_month",
		"At the end of the month, how much money do you usually have?",
		"Al final del mes, ¿cuánto dinero suele tener?",
		[]models.Option{
			opt("More than enough", "Más que suficiente", 1),
			opt("Just enough", "Justo suficiente", 2),
			opt("Not enough", "No suficiente", 3),
		})
	b.choice("Financial Strain", "fin_utils_shut",
		"In the past 12 months, were any utilities shut off due to nonpayment?",
		"En los últimos 12 meses, ¿algún servicio fue cortado por falta de pago?",
		yn)
	b.choice("Financial Strain", "fin_emergency_400",
		"Do you have at least $400 available for an emergency?",
		"¿Tiene al menos $400 disponibles para una emergencia?",
		yn)
	b.choice("Financial Strain", "fin_payday_loans",
		"Have you used payday loans/borrowed to cover living expenses?",
		"¿Usó préstamos de día de pago o pidió prestado para gastos de vida?",
		yn)
	b.choice("Financial Strain", "fin_help_others",
		"Do you receive help from family/friends/community programs for living expenses?",
		"¿Recibe ayuda de familia/amigos/programas comunitarios para gastos de vida?",
		yn)

	// Social Support
	ssItems := []struct{ id, en, es string }{
		{"ss_listen", "Someone is available to listen when you need to talk.", "Alguien disponible para escuchar cuando necesita hablar."},
		{"ss_advice", "Someone gives good advice when you are in trouble.", "Alguien da buen consejo cuando tiene problemas."},
		{"ss_chores", "Someone helps with chores if you are sick.", "Alguien ayuda con tareas si está enfermo."},
		{"ss_emotional", "Someone provides emotional support.", "Alguien brinda apoyo emocional."},
		{"ss_private", "Someone to share your private worries and fears.", "Alguien con quien compartir preocupaciones privadas."},
		{"ss_love", "Someone to love you and make you feel wanted.", "Alguien que le ama y le hace sentir valorado."},
	}
	for _, item := range ssItems {
		b.choice("Social Support", item.id, item.en, item.es, freq5)
	}

	// Civic Engagement
	b.choice("Civic Engagement", "civ_registered", "Are you registered to vote?", "¿Está registrado para votar?", yn)
	b.choice("Civic Engagement", "civ_voted", "Did you vote in the most recent national election?", "¿Votó en la elección nacional más reciente?", yn)
	b.choice("Civic Engagement", "civ_volunteer", "How often do you volunteer in your community?", "¿Con qué frecuencia es voluntario en su comunidad?", freq5)
	b.choice("Civic Engagement", "civ_meetings", "How often do you attend neighborhood/community meetings?", "¿Con qué frecuencia asiste a reuniones comunitarias/vecinales?", freq5)
	b.choice("Civic Engagement", "civ_voice", "Do you feel your voice is heard in local decision-making?", "¿Siente que su voz se escucha en la toma de decisiones locales?",
		[]models.Option{
			opt("Yes", "Sí", 1),
			opt("Sometimes", "A veces", 2),
			opt("No", "No", 3),
		})

	// Work & Labor
	b.choice("Work & Labor", "work_sick_leave", "Does your job provide paid sick leave?", "¿Su trabajo ofrece licencia por enfermedad pagada?", yn)
	b.choice("Work & Labor", "work_insurance", "Does your job provide health insurance?", "¿Su trabajo ofrece seguro de salud?", yn)
	b.choice("Work & Labor", "work_retirement", "Does your job provide retirement/pension benefits?", "¿Su trabajo ofrece beneficios de jubilación/pensión?", yn)
	b.choice("Work & Labor", "work_min_wage", "Does your job pay at least local minimum wage?", "¿Su trabajo paga al menos el salario mínimo local?", yn)
	b.choice("Work & Labor", "work_union", "Are you a member of a union/worker organization?", "¿Es miembro de un sindicato/organización laboral?", yn)

	// Environment
	b.choice("Environment", "env_air_quality",
		"Is the air quality in your neighborhood generally good, fair, or poor?",
		"¿La calidad del aire en su vecindario es buena, regular o mala?",
		[]models.Option{
			opt("Good", "Buena", 1),
			opt("Fair", "Regular", 2),
			opt("Poor", "Mala", 3),
		})
	b.choice("Environment", "env_exposure_health",
		"Any health problems you think related to environmental exposures (pollution/lead/pesticides)?",
		"¿Problemas de salud que crea relacionados con exposiciones ambientales (contaminación/plomo/plaguicidas)?",
		yn)
	b.choice("Environment", "env_trash",
		"How often do you see trash/litter/illegal dumping in your neighborhood?",
		"¿Con qué frecuencia ve basura/tiraderos ilegales en su vecindario?",
		freq5)
	b.choice("Environment", "env_outdoor_spaces",
		"Do you have access to safe outdoor spaces for exercise and recreation?",
		"¿Tiene acceso a espacios exteriores seguros para ejercicio y recreación?",
		yn)
	b.choice("Environment", "env_safe_water",
		"Do you have access to clean, safe tap water in your home?",
		"¿Tiene acceso a agua potable segura en su casa?",
		yn)

	// Community Resilience
	b.choice("Community Resilience", "res_safe_place_disaster", "In a disaster (flood/fire/earthquake), do you have a safe place to go?", "En un desastre (inundación/incendio/terremoto), ¿tiene un lugar seguro a dónde ir?", yn)
	b.choice("Community Resilience", "res_comm_resources", "Does your community have emergency preparedness resources?", "¿Su comunidad tiene recursos de preparación para emergencias?", yn)
	b.choice("Community Resilience", "res_info_access", "Do you know how to access emergency information in your area?", "¿Sabe cómo acceder a la información de emergencias en su zona?", yn)
	b.choice("Community Resilience", "res_neighbors_help", "Do you have neighbors/community you can rely on in an emergency?", "¿Tiene vecinos/comunidad en quienes confiar en una emergencia?", yn)
	b.choice("Community Resilience", "res_recover_quick", "Do you feel your community could recover quickly after a disaster?", "¿Cree que su comunidad podría recuperarse rápidamente tras un desastre?",
		[]models.Option{
			opt("Yes", "Sí", 1),
			opt("Maybe", "Quizá", 2),
			opt("No", "No", 3),
		})

	// Tobacco Use
	b.choice("Tobacco Use", "tob_now_smoke", "Do you now smoke cigarettes?", "¿Actualmente fuma cigarrillos?",
		[]models.Option{
			opt("Every day", "Todos los días", 1),
			opt("Some days", "Algunos días", 2),
			opt("Not at all", "Nada", 3),
		})
	b.choice("Tobacco Use", "tob_100_cigs", "Have you smoked at least 100 cigarettes in your life?", "¿Ha fumado al menos 100 cigarrillos en su vida?", yn,
		models.CodeIn("tob_now_smoke", 1, 2))
	b.integer("Tobacco Use", "tob_age_start", "At what age did you start smoking regularly?", "¿A qué edad comenzó a fumar regularmente?",
		models.CodeIn("tob_now_smoke", 1, 2))
	b.choice("Tobacco Use", "tob_quit_attempt", "In the past 12 months, have you tried to quit?", "En los últimos 12 meses, ¿intentó dejar de fumar?", yn,
		models.CodeIn("tob_now_smoke", 1, 2))
	b.choice("Tobacco Use", "tob_other_forms", "Do you now use other tobacco (cigars/pipes/smokeless/e-cigarettes)?", "¿Usa ahora otros productos de tabaco (puros/pipas/tabaco sin humo/cigarrillos electrónicos)?", yn)

	// Alcohol Use
	b.choice("Alcohol Use", "alc_ever", "Have you ever had a drink of any kind of alcoholic beverage?", "¿Alguna vez ha tomado alguna bebida alcohólica?", yn)
	b.choice("Alcohol Use", "alc_30d_any", "During the past 30 days, did you have at least one drink of alcohol?", "En los últimos 30 días, ¿tomó al menos una bebida alcohólica?", yn,
		models.CodeIn("alc_ever", 1))
	b.integer("Alcohol Use", "alc_30d_days", "During the past 30 days, on how many days did you drink alcohol?", "En los últimos 30 días, ¿en cuántos días bebió alcohol?",
		models.CodeIn("alc_30d_any", 1))
	b.integer("Alcohol Use", "alc_30d_usual", "On drinking days, how many drinks did you usually have?", "En días que bebió, ¿cuántas bebidas suele tomar?",
		models.CodeIn("alc_30d_any", 1))
	b.integer("Alcohol Use", "alc_30d_max", "During the past 30 days, what is the largest number of drinks you had on any occasion?", "En los últimos 30 días, ¿cuál fue el mayor número de bebidas en una ocasión?",
		models.CodeIn("alc_30d_any", 1))
	b.choice("Alcohol Use", "alc_binge_year", "In the past year, how often did you have 5 (men)/4 (women) or more drinks on one occasion?", "En el último año, ¿con qué frecuencia tomó 5 (hombres)/4 (mujeres) o más bebidas en una ocasión?",
		[]models.Option{
			opt("Never", "Nunca", 0),
			opt("Less than monthly", "Menos que mensual", 1),
			opt("Monthly", "Mensual", 2),
			opt("Weekly", "Semanal", 3),
			opt("Daily or almost daily", "Diaria o casi diaria", 4),
		},
		models.CodeIn("alc_ever", 1))
	cageItems := []struct{ id, en, es string }{
		{"alc_cut", "Have you felt you should cut down on drinking?", "¿Ha sentido que debería reducir su consumo?"},
		{"alc_annoy", "Have people annoyed you by criticizing your drinking?", "¿Le han molestado al criticar su consumo?"},
		{"alc_guilt", "Have you felt bad or guilty about your drinking?", "¿Se ha sentido mal o culpable por su consumo?"},
		{"alc_eyeopener", "Have you had a drink first thing in the morning (eye-opener)?", "¿Ha bebido al despertar (para calmar los nervios)?"},
	}
	for _, item := range cageItems {
		b.choice("Alcohol Use", item.id, item.en, item.es, yn, models.CodeIn("alc_ever", 1))
	}

	// Digital Access
	b.choice("Digital Access", "net_home", "Do you have Internet access at home?", "¿Tiene acceso a Internet en casa?", yn)
	b.choice("Digital Access", "smartphone", "Do you have a smartphone or tablet with Internet?", "¿Tiene un teléfono inteligente o tableta con Internet?", yn)
	b.choice("Digital Access", "net_health_info", "How often do you look up health information online?", "¿Con qué frecuencia busca información de salud en línea?", freq5)
	b.choice("Digital Access", "net_confidence", "How confident are you finding helpful health resources online?", "¿Qué tan seguro(a) se siente para encontrar recursos de salud útiles en línea?", hlConf)
	b.choice("Digital Access", "portal_comm", "Do you use email/patient portals to communicate with your clinic?", "¿Usa correo o portales del paciente para comunicarse con su clínica?", yn)

	return b.err
}
