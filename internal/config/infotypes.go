package config

// DefaultInfoTypes returns the built-in detector category list. It covers
// national identifiers, credentials, and financial data across the
// jurisdictions the service supports.
func DefaultInfoTypes() []string {
	return []string{
		"ARGENTINA_DNI_NUMBER",
		"AUSTRALIA_DRIVERS_LICENSE_NUMBER",
		"AUSTRALIA_MEDICARE_NUMBER",
		"AUSTRALIA_PASSPORT",
		"AUSTRALIA_TAX_FILE_NUMBER",
		"AUTH_TOKEN",
		"AWS_CREDENTIALS",
		"AZERBAIJAN_PASSPORT",
		"AZURE_AUTH_TOKEN",
		"BELARUS_PASSPORT",
		"BELGIUM_NATIONAL_ID_CARD_NUMBER",
		"BRAZIL_CPF_NUMBER",
		"CANADA_BANK_ACCOUNT",
		"CANADA_BC_PHN",
		"CANADA_DRIVERS_LICENSE_NUMBER",
		"CANADA_OHIP",
		"CANADA_PASSPORT",
		"CANADA_QUEBEC_HIN",
		"CANADA_SOCIAL_INSURANCE_NUMBER",
		"CHILE_CDI_NUMBER",
		"CHINA_PASSPORT",
		"CHINA_RESIDENT_ID_NUMBER",
		"COLOMBIA_CDC_NUMBER",
		"CREDIT_CARD_NUMBER",
		"CREDIT_CARD_TRACK_NUMBER",
		"CROATIA_PERSONAL_ID_NUMBER",
		"DENMARK_CPR_NUMBER",
		"ENCRYPTION_KEY",
		"FINANCIAL_ACCOUNT_NUMBER",
		"FINLAND_NATIONAL_ID_NUMBER",
		"FRANCE_CNI",
		"FRANCE_NIR",
		"FRANCE_PASSPORT",
		"FRANCE_TAX_IDENTIFICATION_NUMBER",
		"GCP_API_KEY",
		"GCP_CREDENTIALS",
		"GERMANY_DRIVERS_LICENSE_NUMBER",
		"GERMANY_IDENTITY_CARD_NUMBER",
		"GERMANY_PASSPORT",
		"GERMANY_SCHUFA_ID",
		"GERMANY_TAXPAYER_IDENTIFICATION_NUMBER",
		"HONG_KONG_ID_NUMBER",
		"ICCID_NUMBER",
		"IMEI_HARDWARE_ID",
		"IMSI_ID",
		"INDIA_AADHAAR_INDIVIDUAL",
		"INDIA_GST_INDIVIDUAL",
		"INDIA_PAN_INDIVIDUAL",
		"INDIA_PASSPORT",
		"INDONESIA_NIK_NUMBER",
		"IRELAND_DRIVING_LICENSE_NUMBER",
		"IRELAND_EIRCODE",
		"IRELAND_PASSPORT",
		"IRELAND_PPSN",
		"ISRAEL_IDENTITY_CARD_NUMBER",
		"ITALY_FISCAL_CODE",
		"JAPAN_BANK_ACCOUNT",
		"JAPAN_DRIVERS_LICENSE_NUMBER",
		"JAPAN_INDIVIDUAL_NUMBER",
		"JAPAN_PASSPORT",
		"KAZAKHSTAN_PASSPORT",
		"KOREA_PASSPORT",
		"KOREA_RRN",
		"MEXICO_CURP_NUMBER",
		"MEXICO_PASSPORT",
		"NETHERLANDS_BSN_NUMBER",
		"NETHERLANDS_PASSPORT",
		"NEW_ZEALAND_IRD_NUMBER",
		"NORWAY_NI_NUMBER",
		"OAUTH_CLIENT_SECRET",
		"PARAGUAY_CIC_NUMBER",
		"PASSPORT",
		"PASSWORD",
		"PERU_DNI_NUMBER",
		"POLAND_NATIONAL_ID_NUMBER",
		"POLAND_PASSPORT",
		"POLAND_PESEL_NUMBER",
		"PORTUGAL_CDC_NUMBER",
		"PORTUGAL_SOCIAL_SECURITY_NUMBER",
		"RUSSIA_PASSPORT",
		"SCOTLAND_COMMUNITY_HEALTH_INDEX_NUMBER",
		"SINGAPORE_NATIONAL_REGISTRATION_ID_NUMBER",
		"SINGAPORE_PASSPORT",
		"SOUTH_AFRICA_ID_NUMBER",
		"SPAIN_CIF_NUMBER",
		"SPAIN_DNI_NUMBER",
		"SPAIN_DRIVERS_LICENSE_NUMBER",
		"SPAIN_NIE_NUMBER",
		"SPAIN_NIF_NUMBER",
		"SPAIN_PASSPORT",
		"SPAIN_SOCIAL_SECURITY_NUMBER",
		"SSL_CERTIFICATE",
		"STORAGE_SIGNED_POLICY_DOCUMENT",
		"STORAGE_SIGNED_URL",
		"SWEDEN_NATIONAL_ID_NUMBER",
		"SWEDEN_PASSPORT",
		"SWITZERLAND_SOCIAL_SECURITY_NUMBER",
		"TAIWAN_PASSPORT",
		"THAILAND_NATIONAL_ID_NUMBER",
		"TURKEY_ID_NUMBER",
		"UK_DRIVERS_LICENSE_NUMBER",
		"UK_ELECTORAL_ROLL_NUMBER",
		"UK_NATIONAL_HEALTH_SERVICE_NUMBER",
		"UK_NATIONAL_INSURANCE_NUMBER",
		"UK_PASSPORT",
		"UK_TAXPAYER_REFERENCE",
		"UKRAINE_PASSPORT",
		"URUGUAY_CDI_NUMBER",
		"US_ADOPTION_TAXPAYER_IDENTIFICATION_NUMBER",
		"US_DEA_NUMBER",
		"US_DRIVERS_LICENSE_NUMBER",
		"US_EMPLOYER_IDENTIFICATION_NUMBER",
		"US_INDIVIDUAL_TAXPAYER_IDENTIFICATION_NUMBER",
		"US_MEDICARE_BENEFICIARY_ID_NUMBER",
		"US_PASSPORT",
		"US_PREPARER_TAXPAYER_IDENTIFICATION_NUMBER",
		"US_SOCIAL_SECURITY_NUMBER",
		"UZBEKISTAN_PASSPORT",
		"VEHICLE_IDENTIFICATION_NUMBER",
		"VENEZUELA_CDI_NUMBER",
		"WEAK_PASSWORD_HASH",
	}
}

// DefaultFieldsToRedact returns the stock field selection.
func DefaultFieldsToRedact() []string {
	return []string{
		"column_1",
		"column_2",
		"column_3",
		"column_4",
	}
}
