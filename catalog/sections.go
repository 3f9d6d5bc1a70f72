// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

// Fixed display order of the instrument's sections.
var sections = []Section{
	{"Access to Health Services", "Access to Health Services", "Acceso a servicios de salud"},
	{"Income", "Income", "Ingresos"},
	{"Birthplace", "Birthplace", "Lugar de nacimiento"},
	{"Address", "Current Address (optional)", "Dirección actual (opcional)"},
	{"Age", "Age", "Edad"},
	{"Employment", "Employment", "Empleo"},
	{"Marital Status", "Marital Status", "Estado civil"},
	{"Education", "Education", "Educación"},
	{"English Proficiency", "English Proficiency", "Dominio del inglés"},
	{"Ethnicity & Race", "Ethnicity & Race", "Origen étnico y raza"},
	{"Food Insecurity", "Food Insecurity", "Inseguridad alimentaria"},
	{"Health Insurance", "Health Insurance Coverage", "Cobertura de seguro de salud"},
	{"Health Literacy", "Health Literacy", "Conocimientos de salud"},
	{"General Health", "General Health", "Salud general"},
	{"Sexual Orientation", "Sexual Orientation", "Orientación sexual"},
	{"Discrimination (Major)", "Discrimination (Major)", "Discriminación (Mayor)"},
	{"Discrimination (Everyday)", "Discrimination (Everyday)", "Discriminación (Cotidiana)"},
	{"Neighborhood", "Neighborhood", "Vecindario"},
	{"Housing", "Housing", "Vivienda"},
	{"Transportation", "Transportation", "Transporte"},
	{"Financial Strain", "Financial Strain", "Dificultad financiera"},
	{"Social Support", "Social Support", "Apoyo social"},
	{"Civic Engagement", "Civic Engagement", "Participación cívica"},
	{"Work & Labor", "Work & Labor", "Trabajo y beneficios"},
	{"Environment", "Environment", "Medio ambiente"},
	{"Community Resilience", "Community Resilience", "Resiliencia comunitaria"},
	{"Tobacco Use", "Tobacco Use", "Uso de tabaco"},
	{"Alcohol Use", "Alcohol Use", "Uso de alcohol"},
	{"Digital Access", "Digital Access", "Acceso digital"},
}
