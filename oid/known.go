package oid

// wellKnown seeds the Default registry.
var wellKnown = map[string]Entry{
	// X.520 attribute types
	"2.5.4.3":  {"commonName", "X.520 DN component"},
	"2.5.4.4":  {"surname", "X.520 DN component"},
	"2.5.4.5":  {"serialNumber", "X.520 DN component"},
	"2.5.4.6":  {"countryName", "X.520 DN component"},
	"2.5.4.7":  {"localityName", "X.520 DN component"},
	"2.5.4.8":  {"stateOrProvinceName", "X.520 DN component"},
	"2.5.4.9":  {"streetAddress", "X.520 DN component"},
	"2.5.4.10": {"organizationName", "X.520 DN component"},
	"2.5.4.11": {"organizationalUnitName", "X.520 DN component"},
	"2.5.4.12": {"title", "X.520 DN component"},
	"2.5.4.13": {"description", "X.520 DN component"},
	"2.5.4.17": {"postalCode", "X.520 DN component"},
	"2.5.4.41": {"name", "X.520 DN component"},
	"2.5.4.42": {"givenName", "X.520 DN component"},
	"2.5.4.43": {"initials", "X.520 DN component"},
	"2.5.4.46": {"dnQualifier", "X.520 DN component"},
	"2.5.4.65": {"pseudonym", "X.520 DN component"},
	"2.5.4.97": {"organizationIdentifier", "X.520 DN component"},

	// X.509 certificate extensions
	"2.5.29.9":    {"subjectDirectoryAttributes", "X.509 extension"},
	"2.5.29.14":   {"subjectKeyIdentifier", "X.509 extension"},
	"2.5.29.15":   {"keyUsage", "X.509 extension"},
	"2.5.29.16":   {"privateKeyUsagePeriod", "X.509 extension"},
	"2.5.29.17":   {"subjectAltName", "X.509 extension"},
	"2.5.29.18":   {"issuerAltName", "X.509 extension"},
	"2.5.29.19":   {"basicConstraints", "X.509 extension"},
	"2.5.29.20":   {"cRLNumber", "X.509 extension"},
	"2.5.29.21":   {"cRLReason", "X.509 extension"},
	"2.5.29.30":   {"nameConstraints", "X.509 extension"},
	"2.5.29.31":   {"cRLDistributionPoints", "X.509 extension"},
	"2.5.29.32":   {"certificatePolicies", "X.509 extension"},
	"2.5.29.32.0": {"anyPolicy", "X.509 certificate policy"},
	"2.5.29.33":   {"policyMappings", "X.509 extension"},
	"2.5.29.35":   {"authorityKeyIdentifier", "X.509 extension"},
	"2.5.29.36":   {"policyConstraints", "X.509 extension"},
	"2.5.29.37":   {"extKeyUsage", "X.509 extension"},
	"2.5.29.46":   {"freshestCRL", "X.509 extension"},
	"2.5.29.54":   {"inhibitAnyPolicy", "X.509 extension"},

	// PKCS #1
	"1.2.840.113549.1.1.1":  {"rsaEncryption", "PKCS #1"},
	"1.2.840.113549.1.1.5":  {"sha1WithRSAEncryption", "PKCS #1"},
	"1.2.840.113549.1.1.10": {"rsassa-pss", "PKCS #1"},
	"1.2.840.113549.1.1.11": {"sha256WithRSAEncryption", "PKCS #1"},
	"1.2.840.113549.1.1.12": {"sha384WithRSAEncryption", "PKCS #1"},
	"1.2.840.113549.1.1.13": {"sha512WithRSAEncryption", "PKCS #1"},

	// PKCS #7 and #9
	"1.2.840.113549.1.7.1":  {"data", "PKCS #7"},
	"1.2.840.113549.1.7.2":  {"signedData", "PKCS #7"},
	"1.2.840.113549.1.7.3":  {"envelopedData", "PKCS #7"},
	"1.2.840.113549.1.9.1":  {"emailAddress", "PKCS #9 via PKCS #10"},
	"1.2.840.113549.1.9.3":  {"contentType", "PKCS #9"},
	"1.2.840.113549.1.9.4":  {"messageDigest", "PKCS #9"},
	"1.2.840.113549.1.9.5":  {"signingTime", "PKCS #9"},
	"1.2.840.113549.1.9.7":  {"challengePassword", "PKCS #9 via PKCS #10"},
	"1.2.840.113549.1.9.14": {"extensionRequest", "PKCS #9 via CRMF"},

	// Elliptic curves
	"1.2.840.10045.2.1":   {"ecPublicKey", "ANSI X9.62 public key type"},
	"1.2.840.10045.3.1.7": {"prime256v1", "ANSI X9.62 named elliptic curve"},
	"1.2.840.10045.4.3.2": {"ecdsaWithSHA256", "ANSI X9.62 ECDSA algorithm with SHA256"},
	"1.2.840.10045.4.3.3": {"ecdsaWithSHA384", "ANSI X9.62 ECDSA algorithm with SHA384"},
	"1.2.840.10045.4.3.4": {"ecdsaWithSHA512", "ANSI X9.62 ECDSA algorithm with SHA512"},
	"1.3.132.0.34":        {"secp384r1", "SECG (Certicom) named elliptic curve"},
	"1.3.132.0.35":        {"secp521r1", "SECG (Certicom) named elliptic curve"},
	"1.3.101.112":         {"Ed25519", "EdDSA 25519 signature algorithm"},

	// Hash algorithms
	"1.3.14.3.2.26":          {"sha1", "OIW"},
	"2.16.840.1.101.3.4.2.1": {"sha256", "NIST Algorithm"},
	"2.16.840.1.101.3.4.2.2": {"sha384", "NIST Algorithm"},
	"2.16.840.1.101.3.4.2.3": {"sha512", "NIST Algorithm"},

	// PKIX
	"1.3.6.1.5.5.7.1.1":  {"authorityInfoAccess", "PKIX private extension"},
	"1.3.6.1.5.5.7.1.3":  {"qcStatements", "PKIX private extension"},
	"1.3.6.1.5.5.7.2.1":  {"cps", "PKIX policy qualifier"},
	"1.3.6.1.5.5.7.2.2":  {"unotice", "PKIX policy qualifier"},
	"1.3.6.1.5.5.7.3.1":  {"serverAuth", "PKIX key purpose"},
	"1.3.6.1.5.5.7.3.2":  {"clientAuth", "PKIX key purpose"},
	"1.3.6.1.5.5.7.3.3":  {"codeSigning", "PKIX key purpose"},
	"1.3.6.1.5.5.7.3.4":  {"emailProtection", "PKIX key purpose"},
	"1.3.6.1.5.5.7.3.8":  {"timeStamping", "PKIX key purpose"},
	"1.3.6.1.5.5.7.3.9":  {"OCSPSigning", "PKIX key purpose"},
	"1.3.6.1.5.5.7.9.1":  {"dateOfBirth", "PKIX personal data"},
	"1.3.6.1.5.5.7.9.2":  {"placeOfBirth", "PKIX personal data"},
	"1.3.6.1.5.5.7.9.3":  {"gender", "PKIX personal data"},
	"1.3.6.1.5.5.7.9.4":  {"countryOfCitizenship", "PKIX personal data"},
	"1.3.6.1.5.5.7.9.5":  {"countryOfResidence", "PKIX personal data"},
	"1.3.6.1.5.5.7.48.1": {"ocsp", "PKIX"},
	"1.3.6.1.5.5.7.48.2": {"caIssuers", "PKIX subject/authority info access descriptor"},

	// ETSI qualified certificates
	"0.4.0.1862.1.1":   {"etsiQcsCompliance", "ETSI qualified certificate statement"},
	"0.4.0.1862.1.4":   {"etsiQcsQcSSCD", "ETSI qualified certificate statement"},
	"0.4.0.1862.1.5":   {"etsiQcsPds", "ETSI qualified certificate statement"},
	"0.4.0.1862.1.6":   {"etsiQcsQcType", "ETSI qualified certificate statement"},
	"0.4.0.1862.1.6.1": {"etsiQcsQctEsign", "ETSI qualified certificate type"},
	"0.4.0.1862.1.6.2": {"etsiQcsQctEseal", "ETSI qualified certificate type"},
	"0.4.0.1862.1.6.3": {"etsiQcsQctWeb", "ETSI qualified certificate type"},
	"0.4.0.194112.1.0": {"qcpNatural", "ETSI certificate policy"},
	"0.4.0.194112.1.2": {"qcpNaturalQscd", "ETSI certificate policy"},
	"0.4.0.2042.1.1":   {"ncp", "ETSI certificate policy"},
	"0.4.0.2042.1.2":   {"ncpPlus", "ETSI certificate policy"},

	// Microsoft and Netscape
	"1.3.6.1.4.1.311.20.2":    {"certificateTemplateName", "Microsoft"},
	"1.3.6.1.4.1.311.20.2.3":  {"universalPrincipalName", "Microsoft UPN"},
	"1.3.6.1.4.1.311.21.7":    {"certificateTemplate", "Microsoft"},
	"2.16.840.1.113730.1.1":   {"netscape-cert-type", "Netscape certificate extension"},
	"2.16.840.1.113730.1.13":  {"netscape-comment", "Netscape certificate extension"},
	"1.3.6.1.4.1.11129.2.4.2": {"signedCertificateTimestampList", "Certificate Transparency"},

	// I.CA (Czech Republic)
	"1.3.6.1.4.1.23624.4.3": {"icaPolicyText", "I.CA"},
	"1.3.6.1.4.1.23624.4.6": {"icaUserId", "I.CA"},
	"1.3.6.1.4.1.23624.4.7": {"icaKeyStorage", "I.CA"},
	"1.3.6.1.4.1.11801.2.1": {"mpsvIkcz", "MPSV"},
}
