package main

const languageSessionKey = "language"
const chatGenerationSessionKey = "chatGeneration"
